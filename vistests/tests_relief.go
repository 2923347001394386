package vistests

import "image/color"

func DoReliefTests(t *T) {
	t.Run("shaded relief", ImageComparison{
		ImageNames: []string{"shaded_relief"},
		Tolerance:  DefaultTolerance,
	}.Wrap(testShadedRelief))
}

// The blur softens the graticule over the elevation ramp, which makes this
// the most sensitive test to resampling or color-space changes.
func testShadedRelief(t *T) {
	fig := t.NewFigure(200, 140)
	fig.HorizontalGradient(lowland, highland)
	fig.Graticule(25, color.NRGBA{R: 90, G: 90, B: 90, A: 255})
	fig.Blur(1.5)
}
