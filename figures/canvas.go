package figures

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Canvas is a minimal in-memory figure. The built-in suite uses it to draw
// gradient ramps, graticule grids, and coastline-like traces -- enough to
// exercise the comparison harness without a real plotting engine.
type Canvas struct {
	img        *image.NRGBA
	blurRadius float64
	closed     bool
}

// NewCanvas creates a white canvas of the given size in pixels.
func NewCanvas(width, height int) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// HorizontalGradient fills the canvas with a left-to-right ramp between the
// two colors, interpolating in Lab space so the ramp is perceptually even.
func (c *Canvas) HorizontalGradient(left, right colorful.Color) {
	b := c.img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		t := 0.0
		if b.Dx() > 1 {
			t = float64(x-b.Min.X) / float64(b.Dx()-1)
		}
		cr, cg, cb := left.BlendLab(right, t).Clamped().RGB255()
		col := color.NRGBA{R: cr, G: cg, B: cb, A: 255}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			c.img.SetNRGBA(x, y, col)
		}
	}
}

// Graticule draws vertical and horizontal grid lines at the given pixel
// spacing, starting from the canvas origin.
func (c *Canvas) Graticule(spacing int, col color.Color) {
	if spacing <= 0 {
		return
	}
	b := c.img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += spacing {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			c.img.Set(x, y, col)
		}
	}
	for y := b.Min.Y; y < b.Max.Y; y += spacing {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.img.Set(x, y, col)
		}
	}
}

// Polyline draws straight segments between consecutive points.
func (c *Canvas) Polyline(points []image.Point, col color.Color) {
	for i := 1; i < len(points); i++ {
		c.line(points[i-1], points[i], col)
	}
}

func (c *Canvas) line(p0, p1 image.Point, col color.Color) {
	// Bresenham
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	e := dx + dy
	x, y := p0.X, p0.Y
	for {
		c.img.Set(x, y, col)
		if x == p1.X && y == p1.Y {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// Blur applies a gaussian blur of the given radius at render time.
func (c *Canvas) Blur(radius float64) {
	c.blurRadius = radius
}

func (c *Canvas) Render() (image.Image, error) {
	if c.closed {
		return nil, errors.New("figure is closed")
	}
	if c.blurRadius > 0 {
		return blur.Gaussian(c.img, c.blurRadius), nil
	}
	return c.img, nil
}

func (c *Canvas) Close() error {
	c.closed = true
	return nil
}

// Closed reports whether the figure has been closed by the registry.
func (c *Canvas) Closed() bool {
	return c.closed
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
