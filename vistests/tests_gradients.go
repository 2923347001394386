package vistests

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Ramp endpoints used by the gradient tests. They span a wide Lab-space
// distance so an interpolation change shows up clearly in the RMS metric.
var (
	deepWater = colorful.Color{R: 0.05, G: 0.12, B: 0.38}
	shallows  = colorful.Color{R: 0.53, G: 0.81, B: 0.92}
	lowland   = colorful.Color{R: 0.18, G: 0.55, B: 0.34}
	highland  = colorful.Color{R: 0.93, G: 0.79, B: 0.69}
)

func DoGradientTests(t *T) {
	t.Run("bathymetry ramp", ImageComparison{
		ImageNames: []string{"bathymetry_ramp"},
		Tolerance:  DefaultTolerance,
	}.Wrap(testBathymetryRamp))

	t.Run("hypsometric panels", ImageComparison{
		ImageNames: []string{"ocean_panel", "land_panel"},
		Tolerance:  DefaultTolerance,
	}.Wrap(testHypsometricPanels))
}

func testBathymetryRamp(t *T) {
	fig := t.NewFigure(240, 160)
	fig.HorizontalGradient(deepWater, shallows)
}

func testHypsometricPanels(t *T) {
	ocean := t.NewFigure(200, 120)
	ocean.HorizontalGradient(deepWater, shallows)

	land := t.NewFigure(200, 120)
	land.HorizontalGradient(lowland, highland)
}
