package figures

import (
	"image"
	"image/color"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderNRGBA(t *testing.T, c *Canvas) *image.NRGBA {
	t.Helper()
	img, err := c.Render()
	require.NoError(t, err)
	out := image.NewNRGBA(img.Bounds())
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

func TestNewCanvasIsWhite(t *testing.T) {
	c := NewCanvas(8, 6)
	assert.Equal(t, image.Rect(0, 0, 8, 6), c.Bounds())

	img := renderNRGBA(t, c)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, img.NRGBAAt(3, 3))
}

func TestHorizontalGradientEndpoints(t *testing.T) {
	left := colorful.Color{R: 0, G: 0, B: 1}
	right := colorful.Color{R: 1, G: 0, B: 0}
	c := NewCanvas(100, 10)
	c.HorizontalGradient(left, right)

	img := renderNRGBA(t, c)
	lr, lg, lb := left.RGB255()
	rr, rg, rb := right.RGB255()
	assert.Equal(t, color.NRGBA{R: lr, G: lg, B: lb, A: 255}, img.NRGBAAt(0, 5))
	assert.Equal(t, color.NRGBA{R: rr, G: rg, B: rb, A: 255}, img.NRGBAAt(99, 5))
}

func TestGraticuleDrawsGridLines(t *testing.T) {
	gray := color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	c := NewCanvas(50, 50)
	c.Graticule(10, gray)

	img := renderNRGBA(t, c)
	// on a vertical line, on a horizontal line, and in a cell interior
	assert.Equal(t, gray, img.NRGBAAt(10, 5))
	assert.Equal(t, gray, img.NRGBAAt(5, 20))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, img.NRGBAAt(5, 5))
}

func TestPolylineDrawsEndpoints(t *testing.T) {
	ink := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	c := NewCanvas(40, 40)
	c.Polyline([]image.Point{{2, 2}, {30, 12}, {35, 35}}, ink)

	img := renderNRGBA(t, c)
	assert.Equal(t, ink, img.NRGBAAt(2, 2))
	assert.Equal(t, ink, img.NRGBAAt(30, 12))
	assert.Equal(t, ink, img.NRGBAAt(35, 35))
}

func TestBlurChangesRenderedOutput(t *testing.T) {
	sharp := NewCanvas(40, 40)
	sharp.Graticule(10, color.NRGBA{A: 255})

	blurred := NewCanvas(40, 40)
	blurred.Graticule(10, color.NRGBA{A: 255})
	blurred.Blur(2)

	sharpImg := renderNRGBA(t, sharp)
	blurredImg := renderNRGBA(t, blurred)
	require.Equal(t, sharpImg.Bounds(), blurredImg.Bounds())

	// blur bleeds the black grid line into the neighboring white pixel
	assert.NotEqual(t, sharpImg.NRGBAAt(11, 5), blurredImg.NRGBAAt(11, 5))
}

func TestRenderAfterCloseFails(t *testing.T) {
	c := NewCanvas(10, 10)
	require.NoError(t, c.Close())

	_, err := c.Render()
	assert.Error(t, err)
	assert.True(t, c.Closed())
}

func TestRenderIsDeterministic(t *testing.T) {
	build := func() *Canvas {
		c := NewCanvas(60, 40)
		c.HorizontalGradient(colorful.Color{R: 0.1, G: 0.4, B: 0.8}, colorful.Color{R: 0.9, G: 0.8, B: 0.2})
		c.Graticule(15, color.NRGBA{R: 90, G: 90, B: 90, A: 255})
		return c
	}

	a := renderNRGBA(t, build())
	b := renderNRGBA(t, build())
	assert.Equal(t, a.Pix, b.Pix)
}
