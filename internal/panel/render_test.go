package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryViews(t *testing.T) {
	cat := testCatalog(t, `[
		{"url": "https://x/a", "title": "Story A", "subtitle": "A *quiet* opening.", "byline": "by someone"},
		{"url": "https://x/b", "title": "Story B"}
	]`)

	views := StoryViews(cat)
	require.Len(t, views, 2)

	assert.Equal(t, "Story A", views[0].Title)
	assert.Equal(t, "by someone", views[0].Byline)
	assert.Contains(t, string(views[0].Subtitle), "<em>quiet</em>")

	assert.Equal(t, "Story B", views[1].Title)
	assert.Empty(t, string(views[1].Subtitle))
}

func TestRenderSubtitleSanitizes(t *testing.T) {
	// Raw HTML passes through goldmark but must not survive the
	// sanitizer.
	got := string(renderSubtitle("*em* <script>alert(1)</script>"))
	assert.Contains(t, got, "<em>em</em>")
	assert.NotContains(t, got, "<script")
}

func TestRenderSubtitleEmpty(t *testing.T) {
	assert.Empty(t, string(renderSubtitle("")))
}
