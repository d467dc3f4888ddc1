// Package game runs the per-frame logic of the toy: which letter is shown and
// when a sound is played.
package game

import (
	"math/rand"
	"time"

	"grapheme/internal/audio/clip"
	"grapheme/internal/letter"
	"grapheme/internal/registry"
	"grapheme/internal/tracker"
)

// Player plays a sound without blocking.
type Player interface {
	Play(c *clip.Clip)
}

// Rand picks a random index in [0, n). *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Frame is what the window has to draw after a step.
type Frame struct {
	Asset *registry.Asset // nil when no letter is shown
}

// Game is the loop-control object. It is not safe for concurrent use; the
// window calls Step from its event goroutine only.
type Game struct {
	registry *registry.Registry
	tracker  *tracker.Tracker
	player   Player
	rng      Rand

	current letter.Letter
	showing bool
	idle    bool // press queue was empty on the previous step
}

// New creates a game. rng may be nil, a time-seeded source is used then.
func New(reg *registry.Registry, player Player, rng Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		registry: reg,
		tracker:  tracker.New(),
		player:   player,
		rng:      rng,
		idle:     true,
	}
}

// Step advances one frame with the keys held right now.
func (g *Game) Step(keys tracker.Keys) Frame {
	res := g.tracker.Update(keys)
	switch res.Outcome {
	case tracker.Active:
		g.current = res.Letter
		g.showing = true
	case tracker.Cancelled:
		g.showing = false
	}

	// Leading edge: sound once per press, not once per frame.
	if front, ok := g.tracker.Front(); ok && g.idle {
		g.play(front)
	}
	g.idle = g.tracker.Len() == 0

	return g.Frame()
}

// Frame returns the current frame without advancing.
func (g *Game) Frame() Frame {
	if !g.showing {
		return Frame{}
	}
	return Frame{Asset: g.registry.Asset(g.current)}
}

// Current returns the letter on screen.
func (g *Game) Current() (letter.Letter, bool) {
	return g.current, g.showing
}

func (g *Game) play(l letter.Letter) {
	a := g.registry.Asset(l)
	if a == nil || len(a.Clips) == 0 {
		return
	}
	g.player.Play(a.Clips[g.rng.Intn(len(a.Clips))])
}
