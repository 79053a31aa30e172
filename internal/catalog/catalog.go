// internal/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StoryRef is one shareable story: a canonical URL plus display text.
// Subtitle and Byline are optional extras carried through from the
// project setup data; the panel shows them but never embeds them.
type StoryRef struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Byline   string `json:"byline,omitempty"`
}

// Option is one entry for a selector widget.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ParseError reports malformed catalog JSON. Callers are expected to
// log it and carry on with an empty catalog; a broken catalog must not
// take the share panel down with it.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("catalog parse: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// stripTags removes all markup from display text before it can reach
// an HTML attribute or the panel page.
var stripTags = bluemonday.StrictPolicy()

// Catalog is the read-only, ordered list of shareable stories for one
// site. It is loaded once at startup (and reloaded wholesale when the
// source file changes); nothing mutates it afterwards.
type Catalog struct {
	stories []StoryRef

	// Skipped counts entries dropped at load time for missing a URL
	// or title. Surfaced by the check command.
	Skipped int
}

// Empty returns a catalog with no stories.
func Empty() *Catalog { return &Catalog{} }

// Load parses the story catalog JSON: an array of {url, title} objects,
// optionally carrying subtitle and byline. Entries without a URL or a
// title are skipped. On malformed JSON it returns an empty catalog and
// a *ParseError so the caller can degrade instead of failing.
func Load(raw []byte) (*Catalog, error) {
	var refs []StoryRef
	if err := json.Unmarshal(raw, &refs); err != nil {
		return Empty(), &ParseError{Err: err}
	}

	c := &Catalog{}
	for _, ref := range refs {
		ref.URL = strings.TrimSpace(ref.URL)
		ref.Title = clean(ref.Title)
		ref.Subtitle = clean(ref.Subtitle)
		ref.Byline = clean(ref.Byline)
		if ref.URL == "" || ref.Title == "" {
			c.Skipped++
			continue
		}
		c.stories = append(c.stories, ref)
	}
	return c, nil
}

// LoadFile reads and parses a catalog file. A missing file is not an
// error: single-story sites have no catalog at all.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Empty(), nil
		}
		return Empty(), fmt.Errorf("could not read catalog file at %s: %w", path, err)
	}
	return Load(data)
}

// Len reports the number of loaded stories.
func (c *Catalog) Len() int { return len(c.stories) }

// Stories returns the loaded stories in catalog order.
func (c *Catalog) Stories() []StoryRef { return c.stories }

// FindByURL returns the first story whose URL matches. Uniqueness of
// URLs is assumed but not enforced, so first match wins.
func (c *Catalog) FindByURL(url string) (StoryRef, bool) {
	for _, ref := range c.stories {
		if ref.URL == url {
			return ref, true
		}
	}
	return StoryRef{}, false
}

// Options builds the entries for a selector widget: a placeholder with
// an empty value first, then one option per story in catalog order.
func (c *Catalog) Options(placeholder string) []Option {
	opts := make([]Option, 0, len(c.stories)+1)
	opts = append(opts, Option{Value: "", Label: placeholder})
	for _, ref := range c.stories {
		opts = append(opts, Option{Value: ref.URL, Label: ref.Title})
	}
	return opts
}

// clean strips markup from display text, decodes any entities the
// sanitizer escaped, and trims whitespace.
func clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripTags.Sanitize(s)))
}
