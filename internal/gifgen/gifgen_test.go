package gifgen

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

type shots struct {
	data []byte
	err  error
}

func (s shots) Screenshot() ([]byte, error) { return s.data, s.err }

func TestGenerate(t *testing.T) {
	frames := []image.Image{
		solid(64, 32, color.RGBA{255, 0, 0, 255}),
		solid(64, 32, color.RGBA{0, 0, 255, 255}),
	}
	out := filepath.Join(t.TempDir(), "run.gif")

	size, err := Generate(frames, out, Options{FPS: 4, MaxWidth: 32})
	require.NoError(t, err)
	assert.Positive(t, size)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, g.Image, 2)
	assert.Equal(t, []int{25, 25}, g.Delay)
	assert.Equal(t, 32, g.Image[0].Bounds().Dx())
	assert.Equal(t, 16, g.Image[0].Bounds().Dy())
}

func TestGenerateNoFrames(t *testing.T) {
	_, err := Generate(nil, filepath.Join(t.TempDir(), "x.gif"), Options{})
	assert.Error(t, err)
}

func TestGeneratePalette(t *testing.T) {
	p := generatePalette(solid(8, 8, color.RGBA{10, 20, 30, 255}))
	require.Len(t, p, 256)
	assert.Equal(t, color.RGBA{0, 0, 0, 0}, p[0])
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, p[1])
}

func TestRecorder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(4, 4, color.RGBA{0, 255, 0, 255})))

	r := NewRecorder(shots{data: buf.Bytes()}, 3)
	require.NoError(t, r.Capture())
	assert.Len(t, r.Frames(), 3)

	r = NewRecorder(shots{err: errors.New("target closed")}, 0)
	assert.ErrorContains(t, r.Capture(), "target closed")
	assert.Empty(t, r.Frames())

	r = NewRecorder(shots{data: []byte("not an image")}, 1)
	assert.ErrorContains(t, r.Capture(), "decode screenshot")
}
