// internal/panel/controller.go
package panel

import (
	"html/template"
	"strings"

	"go.uber.org/zap"

	"shareloom/internal/catalog"
	"shareloom/internal/dimension"
	"shareloom/internal/locale"
	"shareloom/internal/urlnorm"
)

// Widget and control ids on the panel page. The controller addresses
// the hosting surface only through these.
const (
	WidgetStorySelect      = "story-select"
	WidgetStorySelectEmbed = "story-select-embed"

	FieldShareURL    = "share-url"
	FieldSiteURL     = "site-url"
	FieldEmbedCode   = "embed-code"
	FieldEmbedWidth  = "embed-width"
	FieldEmbedHeight = "embed-height"

	ControlCopyShare = "copy-share"
	ControlCopySite  = "copy-site"
	ControlCopyEmbed = "copy-embed"
)

// selectorWidgets are the two selection surfaces that must stay in
// sync. Order matters: the title priority chain checks the first
// widget before the second.
var selectorWidgets = [2]string{WidgetStorySelect, WidgetStorySelectEmbed}

const (
	defaultEmbedWidth  = "100%"
	defaultEmbedHeight = "800"
)

var embedTemplate = template.Must(template.New("embed").Parse(
	`<iframe src="{{.Src}}"
  width="{{.Width}}"
  height="{{.Height}}"
  title="{{.Title}}"
  frameborder="0">
</iframe>`))

type embedData struct {
	Src    string
	Width  string
	Height string
	Title  string
}

// PageContext describes the page hosting the panel: where it lives and
// which title fallbacks it offers.
type PageContext struct {
	// Location is the page's full URL, possibly carrying viewer state.
	Location string
	// OGTitle is the content of the page's og:title meta tag, if any.
	OGTitle string
	// DocTitle is the page's document title, if any.
	DocTitle string
	// CatalogMode is true when the page offers selector widgets over a
	// catalog of stories, false when the page itself is the only
	// shareable target.
	CatalogMode bool
}

// State is the controller's whole mutable view-model. An empty
// Selection means nothing is selected: derived outputs are blank and
// the copy controls are disabled.
type State struct {
	Selection string
	Width     string
	Height    string
}

// Controller owns the share/embed view-model for one hosted panel. All
// mutation goes through Dispatch, which returns the UI effects the
// host must apply; the controller never reads the surface back, so the
// two selector widgets can only ever diverge if the host bypasses it.
type Controller struct {
	state   State
	labels  map[string]string // selector widget id -> selected option label
	catalog *catalog.Catalog
	loc     *locale.Table
	page    PageContext
	log     *zap.Logger
}

// New builds a controller over a loaded catalog and locale table.
func New(cat *catalog.Catalog, loc *locale.Table, page PageContext, logger *zap.Logger) *Controller {
	if cat == nil {
		cat = catalog.Empty()
	}
	if loc == nil {
		loc = locale.Builtin()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		labels:  make(map[string]string),
		catalog: cat,
		loc:     loc,
		page:    page,
		log:     logger,
	}
}

// State returns a copy of the current view-model state.
func (c *Controller) State() State { return c.state }

// Dispatch runs one transition and returns the UI effects to apply.
// Unknown events produce no effects.
func (c *Controller) Dispatch(ev Event) []Effect {
	switch ev := ev.(type) {
	case PanelOpen:
		return c.panelOpen()
	case StorySelected:
		return c.storySelected(ev)
	case PresetChosen:
		return c.presetChosen(ev)
	case DimensionEdited:
		return c.dimensionEdited(ev)
	case CopyRequested:
		return c.copyRequested(ev)
	}
	return nil
}

func (c *Controller) panelOpen() []Effect {
	var effects []Effect

	if c.page.CatalogMode {
		c.state.Selection = ""
		c.labels = make(map[string]string)

		placeholder := c.loc.Get("share.select_story")
		opts := c.catalog.Options(placeholder)
		for _, widget := range selectorWidgets {
			effects = append(effects,
				SetOptions(widget, opts),
				SelectOption(widget, ""),
			)
		}
	} else {
		c.state.Selection = c.page.Location
	}

	effects = append(effects,
		SetField(FieldShareURL, c.ShareURL()),
		SetField(FieldSiteURL, c.SiteURL()),
		SetField(FieldEmbedCode, c.EmbedCode()),
	)
	return append(effects, c.copyControlState()...)
}

func (c *Controller) storySelected(ev StorySelected) []Effect {
	c.state.Selection = ev.URL

	label := ""
	if ref, ok := c.catalog.FindByURL(ev.URL); ok {
		label = ref.Title
	}
	for _, widget := range selectorWidgets {
		if label == "" {
			delete(c.labels, widget)
		} else {
			c.labels[widget] = label
		}
	}

	var effects []Effect
	for _, widget := range selectorWidgets {
		if widget != ev.SourceWidget {
			effects = append(effects, SelectOption(widget, ev.URL))
		}
	}
	effects = append(effects,
		SetField(FieldShareURL, c.ShareURL()),
		SetField(FieldEmbedCode, c.EmbedCode()),
	)
	return append(effects, c.copyControlState()...)
}

func (c *Controller) presetChosen(ev PresetChosen) []Effect {
	preset, ok := Preset(ev.Key)
	if !ok {
		// The "custom" menu entry maps to nothing on purpose.
		return nil
	}
	c.state.Width = preset.Width
	c.state.Height = preset.Height
	return []Effect{
		SetField(FieldEmbedWidth, preset.Width),
		SetField(FieldEmbedHeight, preset.Height),
		SetField(FieldEmbedCode, c.EmbedCode()),
	}
}

func (c *Controller) dimensionEdited(ev DimensionEdited) []Effect {
	c.state.Width = ev.Width
	c.state.Height = ev.Height
	return []Effect{SetField(FieldEmbedCode, c.EmbedCode())}
}

func (c *Controller) copyRequested(ev CopyRequested) []Effect {
	var text, trigger string
	switch ev.Target {
	case CopyShare:
		text, trigger = c.ShareURL(), ControlCopyShare
	case CopySite:
		text, trigger = c.SiteURL(), ControlCopySite
	case CopyEmbed:
		text, trigger = c.EmbedCode(), ControlCopyEmbed
	default:
		return nil
	}
	if text == "" {
		// The control should be disabled; a stray event copies nothing.
		return nil
	}
	return []Effect{WriteClipboard(trigger, text)}
}

// copyControlState enables the selection-dependent copy controls only
// when something is selected. The site-wide link is always copyable.
func (c *Controller) copyControlState() []Effect {
	enabled := c.state.Selection != ""
	return []Effect{
		SetEnabled(ControlCopyShare, enabled),
		SetEnabled(ControlCopyEmbed, enabled),
	}
}

// ShareURL is the canonical link for the selected story with viewer
// state stripped, or "" when nothing is selected.
func (c *Controller) ShareURL() string {
	if c.state.Selection == "" {
		return ""
	}
	return urlnorm.StripViewerState(c.state.Selection)
}

// SiteURL is the site-wide link, derived from the page location and
// independent of the selection.
func (c *Controller) SiteURL() string {
	return urlnorm.SiteBase(c.page.Location)
}

// EmbedCode renders the iframe snippet for the current selection and
// dimensions, or "" when nothing is selected.
func (c *Controller) EmbedCode() string {
	if c.state.Selection == "" {
		return ""
	}

	width := strings.TrimSpace(c.state.Width)
	if width == "" {
		width = defaultEmbedWidth
	}
	height := strings.TrimSpace(c.state.Height)
	if height == "" {
		height = defaultEmbedHeight
	}

	var buf strings.Builder
	err := embedTemplate.Execute(&buf, embedData{
		Src:    urlnorm.WithEmbedFlag(c.state.Selection),
		Width:  dimension.Normalize(width),
		Height: dimension.Normalize(height),
		Title:  c.embedTitle(),
	})
	if err != nil {
		c.log.Error("embed snippet render failed", zap.Error(err))
		return ""
	}
	return buf.String()
}

// embedTitle resolves the iframe title: selected option label first
// (first widget wins), then a catalog lookup, then the page's og:title,
// then the document title, then the localized fallback.
func (c *Controller) embedTitle() string {
	for _, widget := range selectorWidgets {
		if label := c.labels[widget]; label != "" {
			return label
		}
	}
	if ref, ok := c.catalog.FindByURL(c.state.Selection); ok {
		return ref.Title
	}
	if c.page.OGTitle != "" {
		return c.page.OGTitle
	}
	if c.page.DocTitle != "" {
		return c.page.DocTitle
	}
	return c.loc.Get("share.default_title")
}
