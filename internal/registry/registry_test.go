package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grapheme/internal/audio/clip"
	"grapheme/internal/letter"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.FontSize = 24
	return opts
}

func fullPaths() map[string][]string {
	paths := make(map[string][]string)
	for _, l := range letter.All() {
		paths[l.String()] = []string{"/sounds/" + l.String() + "/1.mp3"}
	}
	return paths
}

func fakeLoader(loaded *[]string) Loader {
	return func(path string) (*clip.Clip, error) {
		*loaded = append(*loaded, path)
		return &clip.Clip{Path: path}, nil
	}
}

func TestBuild_LoadsEveryLetter(t *testing.T) {
	paths := fullPaths()
	paths["b"] = append(paths["b"], "/sounds/b/2.mp3")

	var loaded []string
	var progressed []letter.Letter
	reg, err := Build(paths, testOptions(), fakeLoader(&loaded), func(l letter.Letter) {
		progressed = append(progressed, l)
	})
	require.NoError(t, err)

	assert.Len(t, loaded, letter.Count+1)
	assert.Equal(t, letter.All(), progressed)
	assert.Equal(t, letter.Count+1, reg.ClipCount())

	b := reg.Asset(letter.B)
	require.NotNil(t, b)
	assert.Equal(t, letter.B, b.Letter)
	require.Len(t, b.Clips, 2)
	assert.Equal(t, "/sounds/b/1.mp3", b.Clips[0].Path)
	assert.Equal(t, "/sounds/b/2.mp3", b.Clips[1].Path)
}

func TestBuild_RendersLabelAndShadow(t *testing.T) {
	var loaded []string
	reg, err := Build(fullPaths(), testOptions(), fakeLoader(&loaded), nil)
	require.NoError(t, err)

	a := reg.Asset(letter.Q)
	require.NotNil(t, a.Label)
	require.NotNil(t, a.Shadow)
	assert.Equal(t, a.Label.Bounds(), a.Shadow.Bounds())
	assert.Equal(t, 6, a.ShadowOffset.X)
	assert.Equal(t, 6, a.ShadowOffset.Y)
}

func TestBuild_AllowsLetterWithoutClips(t *testing.T) {
	paths := fullPaths()
	paths["x"] = nil

	var loaded []string
	reg, err := Build(paths, testOptions(), fakeLoader(&loaded), nil)
	require.NoError(t, err)
	assert.Empty(t, reg.Asset(letter.X).Clips)
}

// A missing letter directory aborts startup; there is no recovery path.
func TestBuild_MissingLetterFails(t *testing.T) {
	paths := fullPaths()
	delete(paths, "k")

	var loaded []string
	_, err := Build(paths, testOptions(), fakeLoader(&loaded), nil)
	require.ErrorIs(t, err, ErrMissingLetter)
	assert.Contains(t, err.Error(), `"k"`)

	var missing *MissingLetterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, letter.K, missing.Letter)
}

func TestBuild_LoaderErrorFails(t *testing.T) {
	boom := errors.New("bad mp3")
	_, err := Build(fullPaths(), testOptions(), func(string) (*clip.Clip, error) {
		return nil, boom
	}, nil)
	require.ErrorIs(t, err, boom)
}

func TestAsset_OutOfRange(t *testing.T) {
	var loaded []string
	reg, err := Build(fullPaths(), testOptions(), fakeLoader(&loaded), nil)
	require.NoError(t, err)
	assert.Nil(t, reg.Asset(letter.Letter(letter.Count)))
}
