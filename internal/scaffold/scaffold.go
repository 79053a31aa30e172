// internal/scaffold/scaffold.go
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateNewPanel scaffolds a share-panel workspace: a config file, a
// starter catalog, an English language table, and a stylesheet.
func CreateNewPanel(name string) error {
	fmt.Println("Scaffolding new panel workspace in:", name)
	mkdir := func(path string) error { return os.MkdirAll(filepath.Join(name, path), 0755) }
	writeFile := func(path, content string) error {
		return os.WriteFile(filepath.Join(name, path), []byte(content), 0644)
	}

	dirs := []string{"locales", "static/css"}
	for _, dir := range dirs {
		if err := mkdir(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	files := map[string]string{
		"site.yaml":            siteYamlContent,
		"stories.json":         storiesJSONContent,
		"locales/en.yaml":      localeEnContent,
		"static/css/panel.css": panelCSSContent,
	}
	for path, content := range files {
		if err := writeFile(path, content); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}

	fmt.Println("Workspace scaffolded. You can now:")
	fmt.Println("  cd", name)
	fmt.Println("  shareloom serve")
	return nil
}

const siteYamlContent = `title: "My Exhibit"
baseurl: ""
language: "en"
catalog: "stories.json"
locale_dir: "locales"
default_width: "100%"
default_height: "800"
`

const storiesJSONContent = `[
  {
    "url": "https://example.org/exhibit/stories/first-story",
    "title": "First Story",
    "subtitle": "A short *introduction* to the exhibit.",
    "byline": "by the curator"
  }
]
`

const localeEnContent = `share:
  select_story: "Select a story..."
  default_title: "Story"
  copy_success: "Copied to clipboard!"
  copy_manual: "Automatic copy failed. Please select the text and copy it manually."
`

const panelCSSContent = `/* Styles for an embedded share panel. The preview server ships its own
   inline styles; this file is for sites hosting the panel themselves. */
.share-panel { font-family: sans-serif; }
.share-panel .copy-message { display: none; color: #2c7a2c; }
.share-panel textarea { font-family: monospace; width: 100%; }
`
