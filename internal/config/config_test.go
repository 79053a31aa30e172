package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	content := `title: "My Exhibit"
baseurl: "https://x/sitebase"
language: "es"
catalog: "data/stories.json"
locale_dir: "data/locales"
default_width: "640"
default_height: "480"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "My Exhibit", cfg.Title)
	assert.Equal(t, "https://x/sitebase", cfg.BaseURL)
	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, "data/stories.json", cfg.CatalogFile)
	assert.Equal(t, "data/locales", cfg.LocaleDir)
	assert.Equal(t, "640", cfg.DefaultWidth)
	assert.Equal(t, "480", cfg.DefaultHeight)
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`title: "Bare"`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "stories.json", cfg.CatalogFile)
	assert.Equal(t, "locales", cfg.LocaleDir)
	assert.Equal(t, "100%", cfg.DefaultWidth)
	assert.Equal(t, "800", cfg.DefaultHeight)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
