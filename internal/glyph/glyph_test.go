package glyph

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func TestRender_DrawsInRequestedColor(t *testing.T) {
	r, err := NewRenderer(64)
	require.NoError(t, err)
	defer r.Close()

	red := color.NRGBA{R: 255, A: 255}
	img := r.Render("W", red)

	size := img.Bounds().Size()
	require.Greater(t, size.X, 0)
	require.Greater(t, size.Y, 0)

	var inked int
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			inked++
			assert.Equal(t, uint8(255), c.R)
			assert.Equal(t, uint8(0), c.G)
			assert.Equal(t, uint8(0), c.B)
		}
	}
	assert.Greater(t, inked, 0, "label must contain visible pixels")
}

func TestRender_ScalesWithSize(t *testing.T) {
	small, err := NewRenderer(32)
	require.NoError(t, err)
	defer small.Close()
	large, err := NewRenderer(128)
	require.NoError(t, err)
	defer large.Close()

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	s := small.Render("A", white).Bounds().Size()
	l := large.Render("A", white).Bounds().Size()

	assert.Greater(t, l.X, s.X)
	assert.Greater(t, l.Y, s.Y)
}

func TestNewRenderer_RejectsNonPositiveSize(t *testing.T) {
	_, err := NewRenderer(0)
	assert.Error(t, err)
}

// inked считает непрозрачные пиксели.
func inked(img *image.NRGBA) int {
	var n int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestRender_KeepsOverhangingInk(t *testing.T) {
	const size = 540
	r, err := NewRenderer(size)
	require.NoError(t, err)
	defer r.Close()

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for _, text := range []string{"A", "J", "W", "Y", "f", "j"} {
		t.Run(text, func(t *testing.T) {
			// Эталон: та же строка на холсте с запасом со всех сторон.
			canvas := image.NewNRGBA(image.Rect(0, 0, 4*size, 4*size))
			d := &font.Drawer{
				Dst:  canvas,
				Src:  image.NewUniform(white),
				Face: r.face,
				Dot:  fixed.P(size, 2*size),
			}
			d.DrawString(text)

			want := inked(canvas)
			require.Greater(t, want, 0)
			assert.Equal(t, want, inked(r.Render(text, white)), "no ink is clipped")
		})
	}
}
