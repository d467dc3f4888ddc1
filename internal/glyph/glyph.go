// Package glyph rasterizes letter labels into images.
package glyph

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Renderer draws text with a single face at a fixed size.
type Renderer struct {
	face font.Face
}

// NewRenderer creates a bold sans renderer at size pixels.
func NewRenderer(size float64) (*Renderer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("glyph: invalid font size %v", size)
	}
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // 1pt == 1px
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: new face: %w", err)
	}
	return &Renderer{face: face}, nil
}

// Render draws text in col on a transparent image. The image covers the
// line (ascent + descent) and the advance, grown to fit any ink that
// overhangs them.
func (r *Renderer) Render(text string, col color.NRGBA) *image.NRGBA {
	m := r.face.Metrics()
	bounds, advance := font.BoundString(r.face, text)

	minX := min(bounds.Min.X.Floor(), 0)
	maxX := max(bounds.Max.X.Ceil(), advance.Ceil())
	minY := min(bounds.Min.Y.Floor(), -m.Ascent.Ceil())
	maxY := max(bounds.Max.Y.Ceil(), m.Descent.Ceil())

	img := image.NewNRGBA(image.Rect(0, 0, maxX-minX, maxY-minY))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: r.face,
		Dot:  fixed.P(-minX, -minY),
	}
	d.DrawString(text)
	return img
}

// Close releases the font face.
func (r *Renderer) Close() error {
	return r.face.Close()
}
