package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	raw := []byte(`[
		{"url": "https://x/a", "title": "Story A", "subtitle": "An opening.", "byline": "by someone"},
		{"url": "https://x/b", "title": "Story B"}
	]`)
	c, err := Load(raw)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	stories := c.Stories()
	assert.Equal(t, "https://x/a", stories[0].URL)
	assert.Equal(t, "Story A", stories[0].Title)
	assert.Equal(t, "An opening.", stories[0].Subtitle)
	assert.Equal(t, "by someone", stories[0].Byline)
	assert.Equal(t, "Story B", stories[1].Title)
}

func TestLoadStripsMarkupFromDisplayText(t *testing.T) {
	raw := []byte(`[{"url": "https://x/a", "title": "<b>Story</b> &amp; More", "subtitle": "<script>alert(1)</script>plain"}]`)
	c, err := Load(raw)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "Story & More", c.Stories()[0].Title)
	assert.Equal(t, "plain", c.Stories()[0].Subtitle)
}

func TestLoadSkipsIncompleteEntries(t *testing.T) {
	raw := []byte(`[
		{"url": "", "title": "No URL"},
		{"url": "https://x/a", "title": ""},
		{"url": "https://x/b", "title": "Kept"}
	]`)
	c, err := Load(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Skipped)
	assert.Equal(t, "Kept", c.Stories()[0].Title)
}

func TestLoadParseError(t *testing.T) {
	c, err := Load([]byte(`{not json`))
	require.Error(t, err)

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, 0, c.Len(), "parse failure must leave an empty, usable catalog")
}

func TestFindByURLFirstMatchWins(t *testing.T) {
	raw := []byte(`[
		{"url": "https://x/a", "title": "First"},
		{"url": "https://x/a", "title": "Second"}
	]`)
	c, err := Load(raw)
	require.NoError(t, err)

	ref, ok := c.FindByURL("https://x/a")
	require.True(t, ok)
	assert.Equal(t, "First", ref.Title)

	_, ok = c.FindByURL("https://x/missing")
	assert.False(t, ok)
}

func TestOptions(t *testing.T) {
	raw := []byte(`[
		{"url": "https://x/a", "title": "Story A"},
		{"url": "https://x/b", "title": "Story B"}
	]`)
	c, err := Load(raw)
	require.NoError(t, err)

	opts := c.Options("Select a story...")
	require.Len(t, opts, 3)
	assert.Equal(t, Option{Value: "", Label: "Select a story..."}, opts[0])
	assert.Equal(t, Option{Value: "https://x/a", Label: "Story A"}, opts[1])
	assert.Equal(t, Option{Value: "https://x/b", Label: "Story B"}, opts[2])
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stories.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"url": "https://x/a", "title": "Story A"}]`), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	c, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}
