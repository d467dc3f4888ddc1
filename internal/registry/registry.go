// Package registry holds the per-letter assets: rendered labels and sounds.
package registry

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"grapheme/internal/audio/clip"
	"grapheme/internal/glyph"
	"grapheme/internal/letter"
)

// ErrMissingLetter is returned when a letter has no sound directory.
var ErrMissingLetter = errors.New("no sounds for letter")

// MissingLetterError names the letter without a sound directory. It matches
// ErrMissingLetter with errors.Is.
type MissingLetterError struct {
	Letter letter.Letter
}

func (e *MissingLetterError) Error() string {
	return fmt.Sprintf("%v %q", ErrMissingLetter, e.Letter.String())
}

func (e *MissingLetterError) Is(target error) bool {
	return target == ErrMissingLetter
}

// Asset is everything the toy needs to show and pronounce one letter.
type Asset struct {
	Letter       letter.Letter
	Label        *image.NRGBA
	Shadow       *image.NRGBA
	ShadowOffset image.Point
	Clips        []*clip.Clip
}

// Options control label rendering.
type Options struct {
	FontSize     float64
	ShadowOffset int
	TextColor    color.NRGBA
	ShadowColor  color.NRGBA
}

// DefaultOptions match the classic look: white on a black drop shadow.
func DefaultOptions() Options {
	return Options{
		FontSize:     540,
		ShadowOffset: 6,
		TextColor:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		ShadowColor:  color.NRGBA{A: 255},
	}
}

// Loader loads a single sound file.
type Loader func(path string) (*clip.Clip, error)

// Registry is immutable once built.
type Registry struct {
	assets [letter.Count]*Asset
}

// Build renders labels and loads sounds for every letter. paths maps the
// lowercase letter to its sound files, as returned by assets.Scan. progress,
// if set, is called after each letter is ready.
func Build(paths map[string][]string, opts Options, load Loader, progress func(letter.Letter)) (*Registry, error) {
	r, err := glyph.NewRenderer(opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	reg := &Registry{}
	for _, l := range letter.All() {
		files, ok := paths[l.String()]
		if !ok {
			return nil, &MissingLetterError{Letter: l}
		}

		a := &Asset{
			Letter:       l,
			Label:        r.Render(l.Upper(), opts.TextColor),
			Shadow:       r.Render(l.Upper(), opts.ShadowColor),
			ShadowOffset: image.Pt(opts.ShadowOffset, opts.ShadowOffset),
			Clips:        make([]*clip.Clip, 0, len(files)),
		}
		for _, path := range files {
			log.Printf("loading sound: %s", path)
			c, err := load(path)
			if err != nil {
				return nil, fmt.Errorf("letter %q: %w", l.String(), err)
			}
			a.Clips = append(a.Clips, c)
		}
		reg.assets[l] = a

		if progress != nil {
			progress(l)
		}
	}

	return reg, nil
}

// Asset returns the asset of l.
func (r *Registry) Asset(l letter.Letter) *Asset {
	if !l.Valid() {
		return nil
	}
	return r.assets[l]
}

// ClipCount returns the number of loaded sounds over all letters.
func (r *Registry) ClipCount() int {
	n := 0
	for _, a := range r.assets {
		if a != nil {
			n += len(a.Clips)
		}
	}
	return n
}
