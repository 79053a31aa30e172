// internal/panel/render.go
package panel

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"shareloom/internal/catalog"
)

var (
	markdownRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// StoryView is one catalog entry prepared for the panel page. The
// subtitle may contain markdown; it is rendered and sanitized here so
// the page template can trust it.
type StoryView struct {
	URL      string
	Title    string
	Subtitle template.HTML
	Byline   string
}

// StoryViews prepares catalog entries for display, rendering subtitle
// markdown to sanitized HTML.
func StoryViews(c *catalog.Catalog) []StoryView {
	views := make([]StoryView, 0, c.Len())
	for _, ref := range c.Stories() {
		views = append(views, StoryView{
			URL:      ref.URL,
			Title:    ref.Title,
			Subtitle: renderSubtitle(ref.Subtitle),
			Byline:   ref.Byline,
		})
	}
	return views
}

func renderSubtitle(md string) template.HTML {
	if md == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(md), &buf); err != nil {
		// A subtitle that fails to render is dropped, not fatal.
		return ""
	}
	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes()))
}
