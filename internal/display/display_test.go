package display

import (
	"testing"

	gioinput "gioui.org/io/input"
	"gioui.org/io/key"
	"gioui.org/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grapheme/internal/game"
	"grapheme/internal/letter"
	"grapheme/internal/tracker"
)

// trackingStepper runs only the tracker and remembers the last result.
type trackingStepper struct {
	tracker *tracker.Tracker
	last    tracker.Result
}

func (s *trackingStepper) Step(keys tracker.Keys) game.Frame {
	s.last = s.tracker.Update(keys)
	return game.Frame{}
}

// frames feeds key events to the window through a gio router, one frame
// per call.
type frames struct {
	r gioinput.Router
	w *Window
}

func newFrames(t *testing.T) (*frames, *trackingStepper) {
	t.Helper()
	s := &trackingStepper{tracker: tracker.New()}
	f := &frames{w: New(s, DefaultConfig())}
	f.w.step(f.r.Source()) // регистрация фильтров
	return f, s
}

func (f *frames) next(evts ...key.Event) {
	f.r.Frame(new(op.Ops))
	for _, e := range evts {
		f.r.Queue(e)
	}
	f.w.step(f.r.Source())
}

func TestStep_AppliesKeyEvents(t *testing.T) {
	f, s := newFrames(t)

	f.next(key.Event{Name: "D", State: key.Press})
	assert.Equal(t, tracker.Active, s.last.Outcome)
	assert.Equal(t, letter.D, s.last.Letter)

	f.next(key.Event{Name: "D", State: key.Release, Modifiers: key.ModCtrl})
	assert.Zero(t, f.w.keys.Count())
	assert.Zero(t, s.tracker.Len())
}

func TestFocusLoss_ReleasesHeldKeys(t *testing.T) {
	f, s := newFrames(t)

	f.next(
		key.Event{Name: "A", State: key.Press},
		key.Event{Name: "B", State: key.Press},
		key.Event{Name: key.NameEscape, State: key.Press},
	)
	require.Equal(t, 2, s.tracker.Len())
	require.Equal(t, tracker.Cancelled, s.last.Outcome)

	f.w.focusChanged(false)
	assert.Equal(t, tracker.Keys{}, f.w.keys)

	// Отпускания не пришли, но очередь пустеет на следующем кадре.
	f.next()
	assert.Zero(t, s.tracker.Len())
	assert.Equal(t, tracker.Idle, s.last.Outcome)
}

func TestFocusGain_KeepsHeldKeys(t *testing.T) {
	f, s := newFrames(t)

	f.next(key.Event{Name: "Z", State: key.Press})
	f.w.focusChanged(true)
	f.next()

	assert.True(t, f.w.keys.Held(letter.Z))
	assert.Equal(t, 1, s.tracker.Len())
}

func TestClose_BeforeRun(t *testing.T) {
	w := New(&trackingStepper{tracker: tracker.New()}, DefaultConfig())

	assert.NotPanics(t, w.Close)

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.True(t, w.closing, "Run closes the window as soon as it exists")
	assert.Nil(t, w.window)
}
