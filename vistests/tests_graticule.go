package vistests

import (
	"image"
	"image/color"
)

var (
	gridGray   = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	oceanBlue  = color.NRGBA{R: 214, G: 234, B: 248, A: 255}
	coastBrown = color.NRGBA{R: 96, G: 64, B: 32, A: 255}
)

// A rough coastline-like trace. The exact shape does not matter, only that
// it renders identically on every run.
var coastTrace = []image.Point{
	{10, 90}, {40, 70}, {65, 78}, {90, 52}, {120, 60},
	{150, 35}, {185, 48}, {210, 30}, {230, 38},
}

func DoGraticuleTests(t *T) {
	t.Run("grid", ImageComparison{
		ImageNames: []string{"grid_20px"},
		Tolerance:  DefaultTolerance,
	}.Wrap(testGraticuleGrid))

	t.Run("coastline", ImageComparison{
		ImageNames: []string{"coastline"},
		Tolerance:  DefaultTolerance,
	}.Wrap(testCoastline))
}

func testGraticuleGrid(t *T) {
	fig := t.NewFigure(240, 120)
	fig.Graticule(20, gridGray)
}

func testCoastline(t *T) {
	fig := t.NewFigure(240, 120)
	fig.Fill(oceanBlue)
	fig.Graticule(30, gridGray)
	fig.Polyline(coastTrace, coastBrown)
}
