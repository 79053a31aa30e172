// internal/panel/events.go
package panel

// Event is a user interaction the controller reacts to. Each concrete
// event maps to exactly one transition in Controller.Dispatch.
type Event interface {
	isEvent()
}

// PanelOpen fires when the share panel is revealed. In catalog mode it
// resets the selection; on a single-story page it selects the page
// itself.
type PanelOpen struct{}

// StorySelected fires when the user picks a story in one of the two
// selector widgets. An empty URL means the placeholder was picked.
type StorySelected struct {
	URL          string
	SourceWidget string
}

// PresetChosen fires when a named dimension preset is picked. Unknown
// keys (the "custom" menu entry) are a no-op.
type PresetChosen struct {
	Key string
}

// DimensionEdited fires on direct edits to the width/height fields.
type DimensionEdited struct {
	Width  string
	Height string
}

// CopyTarget names which derived text a copy action reads.
type CopyTarget string

const (
	CopyShare CopyTarget = "share"
	CopySite  CopyTarget = "site"
	CopyEmbed CopyTarget = "embed"
)

// CopyRequested fires when a copy control is pressed. It is terminal:
// it changes no state, only hands text to the clipboard boundary.
type CopyRequested struct {
	Target CopyTarget
}

func (PanelOpen) isEvent()       {}
func (StorySelected) isEvent()   {}
func (PresetChosen) isEvent()    {}
func (DimensionEdited) isEvent() {}
func (CopyRequested) isEvent()   {}
