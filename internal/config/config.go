// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PanelConfig holds the configuration from the site.yaml file.
// The `yaml` tags are used by the parser to map file keys to struct fields.
type PanelConfig struct {
	Title    string `yaml:"title"`
	BaseURL  string `yaml:"baseurl"`
	Language string `yaml:"language"`

	// CatalogFile points at the story catalog JSON. A missing file
	// means the site is a single-story context.
	CatalogFile string `yaml:"catalog"`

	// LocaleDir holds the <lang>.yaml language tables.
	LocaleDir string `yaml:"locale_dir"`

	// DefaultWidth and DefaultHeight prefill the embed dimension
	// fields on the panel page.
	DefaultWidth  string `yaml:"default_width"`
	DefaultHeight string `yaml:"default_height"`
}

// Load reads the panel configuration, applying defaults for anything
// the file leaves out.
func Load(path string) (PanelConfig, error) {
	cfg := PanelConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		return PanelConfig{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PanelConfig{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (cfg *PanelConfig) applyDefaults() {
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.CatalogFile == "" {
		cfg.CatalogFile = "stories.json"
	}
	if cfg.LocaleDir == "" {
		cfg.LocaleDir = "locales"
	}
	if cfg.DefaultWidth == "" {
		cfg.DefaultWidth = "100%"
	}
	if cfg.DefaultHeight == "" {
		cfg.DefaultHeight = "800"
	}
}
