package clipboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareloom/internal/panel"
)

type recordingSink struct {
	mu      sync.Mutex
	batches [][]panel.Effect
}

func (r *recordingSink) Apply(effects []panel.Effect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, effects)
}

func (r *recordingSink) all() []panel.Effect {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []panel.Effect
	for _, b := range r.batches {
		out = append(out, b...)
	}
	return out
}

type fakeTimer struct {
	d  time.Duration
	fn func()
}

// newTestFeedback wires a Feedback to a recording sink and a captured
// timer queue so the 2s/3s continuations can be fired by hand.
func newTestFeedback() (*Feedback, *recordingSink, *[]fakeTimer) {
	sink := &recordingSink{}
	timers := &[]fakeTimer{}
	f := NewFeedback(sink, nil, nil)
	f.after = func(d time.Duration, fn func()) {
		*timers = append(*timers, fakeTimer{d: d, fn: fn})
	}
	return f, sink, timers
}

func TestCopySuccessShowsThenHidesFeedback(t *testing.T) {
	f, sink, timers := newTestFeedback()

	ok := WriterFunc(func(ctx context.Context, text string) error { return nil })
	f.Copy(context.Background(), ok, "https://x/a", "copy-share")

	effects := sink.all()
	show, found := effectByOp(effects, panel.OpShowMessage)
	require.True(t, found)
	assert.Equal(t, "copy-share", show.Target)
	assert.Equal(t, "Copied to clipboard!", show.Value)
	_, found = effectByOp(effects, panel.OpSwapIcon)
	assert.True(t, found)

	require.Len(t, *timers, 2)
	assert.Equal(t, 2000*time.Millisecond, (*timers)[0].d)
	assert.Equal(t, 3000*time.Millisecond, (*timers)[1].d)

	(*timers)[0].fn()
	(*timers)[1].fn()

	effects = sink.all()
	_, found = effectByOp(effects, panel.OpRestoreIcon)
	assert.True(t, found, "icon reverts when the 2s timer fires")
	_, found = effectByOp(effects, panel.OpHideMessage)
	assert.True(t, found, "message hides when the 3s timer fires")
}

func TestCopyFailureShowsManualNotice(t *testing.T) {
	f, sink, timers := newTestFeedback()

	denied := WriterFunc(func(ctx context.Context, text string) error {
		return errors.New("permission denied")
	})
	f.Copy(context.Background(), denied, "https://x/a", "copy-share")

	effects := sink.all()
	show, found := effectByOp(effects, panel.OpShowMessage)
	require.True(t, found)
	assert.Contains(t, show.Value, "copy it manually")
	_, found = effectByOp(effects, panel.OpSwapIcon)
	assert.False(t, found)
	assert.Empty(t, *timers, "failure schedules no timers")
}

func TestCopyFailureWithNothingToCopyIsSilent(t *testing.T) {
	f, sink, _ := newTestFeedback()

	f.Acknowledge("copy-share", "", errors.New("permission denied"))

	assert.Empty(t, sink.all())
}

func TestOverlappingCopiesDoNotPanic(t *testing.T) {
	// Timers from consecutive copies race independently; all four must
	// still be scheduled.
	f, _, timers := newTestFeedback()

	f.Acknowledge("copy-share", "a", nil)
	f.Acknowledge("copy-share", "b", nil)

	assert.Len(t, *timers, 4)
}

func effectByOp(effects []panel.Effect, op panel.Op) (panel.Effect, bool) {
	for _, e := range effects {
		if e.Op == op {
			return e, true
		}
	}
	return panel.Effect{}, false
}
