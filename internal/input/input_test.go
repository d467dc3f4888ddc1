package input

import (
	"testing"

	gioinput "gioui.org/io/input"
	"gioui.org/io/key"
	"gioui.org/op"
	"github.com/stretchr/testify/assert"

	"grapheme/internal/letter"
	"grapheme/internal/tracker"
)

func TestApply_LetterPressAndRelease(t *testing.T) {
	var keys tracker.Keys

	assert.True(t, Apply(&keys, key.Event{Name: "A", State: key.Press}))
	assert.True(t, Apply(&keys, key.Event{Name: "Q", State: key.Press, Modifiers: key.ModShift}))
	assert.True(t, keys.Held(letter.A))
	assert.True(t, keys.Held(letter.Q))

	Apply(&keys, key.Event{Name: "A", State: key.Release})
	assert.False(t, keys.Held(letter.A))
	assert.Equal(t, 1, keys.Count())
}

func TestApply_Cancel(t *testing.T) {
	var keys tracker.Keys

	Apply(&keys, key.Event{Name: key.NameEscape, State: key.Press})
	assert.True(t, keys.Cancel)
	assert.Zero(t, keys.Count(), "cancel is not a letter")

	Apply(&keys, key.Event{Name: key.NameEscape, State: key.Release})
	assert.False(t, keys.Cancel)
}

func TestApply_IgnoresOtherKeys(t *testing.T) {
	var keys tracker.Keys

	assert.False(t, Apply(&keys, key.Event{Name: key.NameSpace, State: key.Press}))
	assert.False(t, Apply(&keys, key.Event{Name: "1", State: key.Press}))
	assert.Equal(t, tracker.Keys{}, keys)
}

func TestFilters(t *testing.T) {
	filters := Filters()
	assert.Len(t, filters, letter.Count+1)
	assert.Equal(t, key.Filter{Name: "A", Optional: AnyModifier}, filters[0])
	assert.Equal(t, key.Filter{Name: "Z", Optional: AnyModifier}, filters[letter.Count-1])
	assert.Equal(t, key.Filter{Name: key.NameEscape, Optional: AnyModifier}, filters[letter.Count])
}

// router пропускает события через маршрутизатор gio с Filters(), как окно.
type router struct {
	r    gioinput.Router
	keys tracker.Keys
}

func newRouter() *router {
	rt := new(router)
	rt.drain() // регистрация фильтров
	return rt
}

func (rt *router) send(evts ...key.Event) {
	rt.r.Frame(new(op.Ops))
	for _, e := range evts {
		rt.r.Queue(e)
	}
	rt.drain()
}

func (rt *router) drain() {
	for {
		ev, ok := rt.r.Event(Filters()...)
		if !ok {
			return
		}
		if e, ok := ev.(key.Event); ok {
			Apply(&rt.keys, e)
		}
	}
}

func TestRouter_PressAndRelease(t *testing.T) {
	rt := newRouter()

	rt.send(key.Event{Name: "A", State: key.Press})
	assert.True(t, rt.keys.Held(letter.A))

	rt.send(key.Event{Name: "A", State: key.Release})
	assert.False(t, rt.keys.Held(letter.A))
	assert.Zero(t, rt.keys.Count())
}

func TestRouter_ShiftOnPressOnly(t *testing.T) {
	rt := newRouter()

	rt.send(key.Event{Name: "B", State: key.Press, Modifiers: key.ModShift})
	assert.True(t, rt.keys.Held(letter.B))

	rt.send(key.Event{Name: "B", State: key.Release})
	assert.Zero(t, rt.keys.Count())
}

func TestRouter_ModifierHeldOnRelease(t *testing.T) {
	tests := []struct {
		name string
		mods key.Modifiers
	}{
		{"ctrl", key.ModCtrl},
		{"alt", key.ModAlt},
		{"super", key.ModSuper},
		{"command", key.ModCommand},
		{"ctrl+shift", key.ModCtrl | key.ModShift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newRouter()

			rt.send(key.Event{Name: "A", State: key.Press})
			rt.send(key.Event{Name: "A", State: key.Release, Modifiers: tt.mods})

			assert.False(t, rt.keys.Held(letter.A), "release with %s down must be seen", tt.name)
			assert.Zero(t, rt.keys.Count())
		})
	}
}

func TestRouter_ModifierHeldOnPress(t *testing.T) {
	rt := newRouter()

	rt.send(key.Event{Name: "C", State: key.Press, Modifiers: key.ModCtrl})
	assert.True(t, rt.keys.Held(letter.C))

	rt.send(key.Event{Name: "C", State: key.Release, Modifiers: key.ModCtrl})
	assert.False(t, rt.keys.Held(letter.C))
}

func TestRouter_Cancel(t *testing.T) {
	rt := newRouter()

	rt.send(key.Event{Name: key.NameEscape, State: key.Press})
	assert.True(t, rt.keys.Cancel)

	rt.send(key.Event{Name: key.NameEscape, State: key.Release, Modifiers: key.ModAlt})
	assert.False(t, rt.keys.Cancel)
}

func TestRouter_IgnoresOtherKeys(t *testing.T) {
	rt := newRouter()

	rt.send(
		key.Event{Name: key.NameSpace, State: key.Press},
		key.Event{Name: "1", State: key.Press, Modifiers: key.ModCtrl},
	)
	assert.Equal(t, tracker.Keys{}, rt.keys)
}
