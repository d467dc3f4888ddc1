// Package startup provides a progress window shown while letters load.
package startup

import (
	"image"
	"image/color"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"grapheme/internal/i18n"
	"grapheme/internal/letter"
)

var (
	colorBG     = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	colorText   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorDim    = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	colorTrack  = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	colorAccent = color.NRGBA{R: 240, G: 140, B: 40, A: 255}
)

// Window represents the startup progress window.
type Window struct {
	mu      sync.Mutex
	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	status string
	detail string
	loaded int
}

// New creates a new startup window.
func New() *Window {
	return &Window{
		status: i18n.T("startup_scanning"),
	}
}

// Show displays the window.
func (w *Window) Show() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	stopCh, doneCh := w.stopCh, w.doneCh
	w.mu.Unlock()

	go w.runEventLoop(stopCh, doneCh)
}

// Hide closes the window.
func (w *Window) Hide() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}

	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

// Loaded records that l is ready. Letters load in alphabetical order.
func (w *Window) Loaded(l letter.Letter) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.loaded = int(l) + 1
	w.status = i18n.T("startup_status")
	w.detail = i18n.Tf("startup_letter", l.Upper(), w.loaded, letter.Count)
}

func (w *Window) progress() (status, detail string, fraction float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status, w.detail, float32(w.loaded) / letter.Count
}

func (w *Window) runEventLoop(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	w.window = new(app.Window)
	w.window.Option(
		app.Title(i18n.T("window_title")),
		app.Size(unit.Dp(320), unit.Dp(140)),
		app.MinSize(unit.Dp(320), unit.Dp(140)),
		app.MaxSize(unit.Dp(320), unit.Dp(140)),
	)

	var ops op.Ops
	th := material.NewTheme()

	// Invalidation goroutine
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				w.window.Perform(system.ActionClose)
				return
			case <-ticker.C:
				w.window.Invalidate()
			}
		}
	}()

	for {
		switch e := w.window.Event().(type) {
		case app.DestroyEvent:
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.draw(gtx, th)
			e.Frame(gtx.Ops)
		}
	}
}

func (w *Window) draw(gtx layout.Context, th *material.Theme) layout.Dimensions {
	paint.Fill(gtx.Ops, colorBG)

	status, detail, fraction := w.progress()

	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Label(th, unit.Sp(15), status)
				lbl.Color = colorText
				lbl.Font.Weight = font.Medium
				lbl.Alignment = text.Middle
				return lbl.Layout(gtx)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return drawBar(gtx, fraction)
			}),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if detail == "" {
					return layout.Dimensions{}
				}
				return layout.Inset{Top: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					lbl := material.Label(th, unit.Sp(12), detail)
					lbl.Color = colorDim
					lbl.Alignment = text.Middle
					return lbl.Layout(gtx)
				})
			}),
		)
	})
}

func drawBar(gtx layout.Context, fraction float32) layout.Dimensions {
	width := gtx.Dp(unit.Dp(240))
	height := gtx.Dp(unit.Dp(8))
	radius := height / 2

	track := clip.UniformRRect(image.Rect(0, 0, width, height), radius)
	paint.FillShape(gtx.Ops, colorTrack, track.Op(gtx.Ops))

	if filled := int(float32(width) * fraction); filled > 0 {
		bar := clip.UniformRRect(image.Rect(0, 0, filled, height), radius)
		paint.FillShape(gtx.Ops, colorAccent, bar.Op(gtx.Ops))
	}

	return layout.Dimensions{Size: image.Pt(width, height)}
}
