// internal/locale/locale.go
package locale

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// fallbacks are the hardcoded English literals used when no language
// file provides a key. Keys are dot-separated paths into the YAML
// language tables.
var fallbacks = map[string]string{
	"share.select_story":  "Select a story...",
	"share.default_title": "Story",
	"share.copy_success":  "Copied to clipboard!",
	"share.copy_manual":   "Automatic copy failed. Please select the text and copy it manually.",
}

// Table resolves UI strings from a YAML language file. Lookups fall
// back to the hardcoded English literals, and finally to the key path
// itself, so a missing or broken language file never blanks the UI.
type Table struct {
	strings map[string]interface{}
}

// Builtin returns a table backed only by the hardcoded literals.
func Builtin() *Table { return &Table{} }

// LoadDir loads <lang>.yaml from dir, trying en.yaml when the requested
// language file is missing or unparseable. Failure at every step yields
// the builtin table; localization problems are never fatal.
func LoadDir(dir, lang string) *Table {
	if lang == "" {
		lang = "en"
	}
	names := []string{lang + ".yaml"}
	if lang != "en" {
		names = append(names, "en.yaml")
	}
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		m := map[string]interface{}{}
		if err := yaml.Unmarshal(data, &m); err != nil {
			continue
		}
		return &Table{strings: m}
	}
	return Builtin()
}

// Get resolves a dot-separated key path to a string.
func (t *Table) Get(keyPath string) string {
	if v, ok := t.lookup(keyPath); ok {
		return v
	}
	if fb, ok := fallbacks[keyPath]; ok {
		return fb
	}
	return keyPath
}

// Getf resolves a key path and interpolates {{ var }} placeholders
// from vars.
func (t *Table) Getf(keyPath string, vars map[string]string) string {
	s := t.Get(keyPath)
	for name, value := range vars {
		s = strings.ReplaceAll(s, "{{ "+name+" }}", value)
	}
	return s
}

// Has reports whether the loaded language file itself provides the key,
// ignoring the builtin fallbacks.
func (t *Table) Has(keyPath string) bool {
	_, ok := t.lookup(keyPath)
	return ok
}

// RequiredKeys lists the key paths the panel expects a language file to
// provide, in sorted order.
func RequiredKeys() []string {
	keys := make([]string, 0, len(fallbacks))
	for k := range fallbacks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (t *Table) lookup(keyPath string) (string, bool) {
	var cur interface{} = t.strings
	for _, key := range strings.Split(keyPath, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return "", false
		}
		cur, ok = m[key]
		if !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok
}
