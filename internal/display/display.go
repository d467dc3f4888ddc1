// Package display provides the main window: one large letter on a plain
// background.
package display

import (
	"image"
	"image/color"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"grapheme/internal/game"
	"grapheme/internal/input"
	"grapheme/internal/tracker"
)

// Stepper advances the game by one frame.
type Stepper interface {
	Step(keys tracker.Keys) game.Frame
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int         // Window width in dp
	Height     int         // Window height in dp
	FPS        int         // Frame rate cap
	Background color.NRGBA // Background color
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Title:      "Letter Game",
		Width:      1920,
		Height:     1080,
		FPS:        240,
		Background: color.NRGBA{R: 50, G: 50, B: 50, A: 255},
	}
}

// Window runs the frame loop. Keys and game state are only touched from
// the goroutine that called Run.
type Window struct {
	config  Config
	game    Stepper
	filters []event.Filter
	keys    tracker.Keys
	images  map[*image.NRGBA]paint.ImageOp

	mu      sync.Mutex
	window  *app.Window
	closing bool
}

// New creates the window. Nothing is shown until Run.
func New(g Stepper, cfg Config) *Window {
	return &Window{
		config:  cfg,
		game:    g,
		filters: input.Filters(),
		images:  make(map[*image.NRGBA]paint.ImageOp),
	}
}

// Run shows the window and blocks until it is closed.
func (w *Window) Run() error {
	window := new(app.Window)
	window.Option(
		app.Title(w.config.Title),
		app.Size(unit.Dp(w.config.Width), unit.Dp(w.config.Height)),
		app.MinSize(unit.Dp(w.config.Width), unit.Dp(w.config.Height)),
		app.MaxSize(unit.Dp(w.config.Width), unit.Dp(w.config.Height)),
	)

	w.mu.Lock()
	w.window = window
	closing := w.closing
	w.mu.Unlock()
	if closing {
		window.Perform(system.ActionClose)
	}

	stopCh := make(chan struct{})
	defer close(stopCh)
	go pace(window, w.config.FPS, stopCh)

	var ops op.Ops
	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.ConfigEvent:
			w.focusChanged(e.Config.Focused)
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.draw(gtx, w.step(gtx))
			e.Frame(gtx.Ops)
		}
	}
}

// Close asks the window to close; Run returns once it is gone.
func (w *Window) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closing = true
	if w.window != nil {
		w.window.Perform(system.ActionClose)
	}
}

// pace invalidates the window at most fps times per second.
func pace(window *app.Window, fps int, stopCh <-chan struct{}) {
	if fps <= 0 {
		fps = DefaultConfig().FPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			window.Invalidate()
		}
	}
}

// eventSource is implemented by layout.Context and input.Source.
type eventSource interface {
	Event(filters ...event.Filter) (event.Event, bool)
}

// focusChanged drops held keys on focus loss: release events are lost
// while unfocused.
func (w *Window) focusChanged(focused bool) {
	if !focused {
		w.keys.Clear()
	}
}

// step applies pending key events and advances the game by one frame.
func (w *Window) step(src eventSource) game.Frame {
	w.readKeys(src)
	return w.game.Step(w.keys)
}

func (w *Window) readKeys(src eventSource) {
	for {
		ev, ok := src.Event(w.filters...)
		if !ok {
			return
		}
		if e, ok := ev.(key.Event); ok {
			input.Apply(&w.keys, e)
		}
	}
}

func (w *Window) draw(gtx layout.Context, frame game.Frame) {
	paint.Fill(gtx.Ops, w.config.Background)

	a := frame.Asset
	if a == nil {
		return
	}
	center := gtx.Constraints.Max.Div(2)
	w.drawCentered(gtx, a.Shadow, center.Add(a.ShadowOffset))
	w.drawCentered(gtx, a.Label, center)
}

func (w *Window) drawCentered(gtx layout.Context, img *image.NRGBA, center image.Point) {
	if img == nil {
		return
	}
	imgOp, ok := w.images[img]
	if !ok {
		imgOp = paint.NewImageOp(img)
		w.images[img] = imgOp
	}

	size := img.Bounds().Size()
	defer op.Offset(center.Sub(size.Div(2))).Push(gtx.Ops).Pop()
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	imgOp.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}
