// internal/clipboard/clipboard.go
package clipboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shareloom/internal/locale"
	"shareloom/internal/panel"
)

// Feedback timings are fixed and the timers are fire-and-forget: a
// second copy before they elapse races benignly, and whichever timer
// fires last settles the visible state.
const (
	iconRevertAfter  = 2000 * time.Millisecond
	messageHideAfter = 3000 * time.Millisecond
)

// Writer is the system clipboard boundary. The write is asynchronous
// from the UI's point of view and is never retried.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) Write(ctx context.Context, text string) error { return f(ctx, text) }

// Feedback drives the timed visual acknowledgment around a clipboard
// write. UI changes go through the same effect sink the controller
// uses, so hosts and tests see one uniform stream.
type Feedback struct {
	sink  panel.Sink
	loc   *locale.Table
	log   *zap.Logger
	after func(time.Duration, func())
}

// NewFeedback builds a Feedback over an effect sink.
func NewFeedback(sink panel.Sink, loc *locale.Table, logger *zap.Logger) *Feedback {
	if loc == nil {
		loc = locale.Builtin()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feedback{
		sink: sink,
		loc:  loc,
		log:  logger,
		after: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// Copy writes text to the clipboard through w and acknowledges the
// outcome on the named trigger control. Errors never escape.
func (f *Feedback) Copy(ctx context.Context, w Writer, text, trigger string) {
	f.Acknowledge(trigger, text, w.Write(ctx, text))
}

// Acknowledge drives the feedback for a write whose outcome is already
// known, such as one performed by a hosting browser. On success the
// trigger's message is shown for 3s and its icon swapped for 2s; on
// failure a manual-copy notice is shown, but only when there was
// something to copy.
func (f *Feedback) Acknowledge(trigger, text string, err error) {
	if err != nil {
		f.log.Warn("clipboard write failed",
			zap.String("trigger", trigger),
			zap.Error(err),
		)
		if text != "" {
			f.sink.Apply([]panel.Effect{
				panel.ShowMessage(trigger, f.loc.Get("share.copy_manual")),
			})
		}
		return
	}

	f.sink.Apply([]panel.Effect{
		panel.ShowMessage(trigger, f.loc.Get("share.copy_success")),
		panel.SwapIcon(trigger),
	})
	f.after(iconRevertAfter, func() {
		f.sink.Apply([]panel.Effect{panel.RestoreIcon(trigger)})
	})
	f.after(messageHideAfter, func() {
		f.sink.Apply([]panel.Effect{panel.HideMessage(trigger)})
	})
}
