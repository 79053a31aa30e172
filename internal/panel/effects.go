// internal/panel/effects.go
package panel

import "shareloom/internal/catalog"

// Op names one kind of UI mutation.
type Op string

const (
	OpSetField       Op = "set-field"
	OpSetOptions     Op = "set-options"
	OpSelectOption   Op = "select-option"
	OpSetEnabled     Op = "set-enabled"
	OpShowMessage    Op = "show-message"
	OpHideMessage    Op = "hide-message"
	OpSwapIcon       Op = "swap-icon"
	OpRestoreIcon    Op = "restore-icon"
	OpWriteClipboard Op = "write-clipboard"
)

// Effect is one UI mutation the controller asks its host surface to
// apply. Effects are plain data: a hosted page applies them to the DOM,
// a test records them. The controller itself never touches a widget.
type Effect struct {
	Op      Op               `json:"op"`
	Target  string           `json:"target,omitempty"`
	Value   string           `json:"value,omitempty"`
	Enabled bool             `json:"enabled"`
	Options []catalog.Option `json:"options,omitempty"`
}

// Sink applies effects to a host surface. Implementations must accept
// calls from timer goroutines as well as the event path.
type Sink interface {
	Apply(effects []Effect)
}

func SetField(target, value string) Effect {
	return Effect{Op: OpSetField, Target: target, Value: value}
}

func SetOptions(target string, options []catalog.Option) Effect {
	return Effect{Op: OpSetOptions, Target: target, Options: options}
}

func SelectOption(target, value string) Effect {
	return Effect{Op: OpSelectOption, Target: target, Value: value}
}

func SetEnabled(target string, enabled bool) Effect {
	return Effect{Op: OpSetEnabled, Target: target, Enabled: enabled}
}

func ShowMessage(target, text string) Effect {
	return Effect{Op: OpShowMessage, Target: target, Value: text}
}

func HideMessage(target string) Effect {
	return Effect{Op: OpHideMessage, Target: target}
}

func SwapIcon(target string) Effect {
	return Effect{Op: OpSwapIcon, Target: target}
}

func RestoreIcon(target string) Effect {
	return Effect{Op: OpRestoreIcon, Target: target}
}

func WriteClipboard(target, text string) Effect {
	return Effect{Op: OpWriteClipboard, Target: target, Value: text}
}
