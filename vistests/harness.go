package vistests

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/geoplot/visual-regression-tests/figures"
	"github.com/geoplot/visual-regression-tests/framework"
	"github.com/geoplot/visual-regression-tests/imagecompare"
)

// DefaultTolerance is the RMS tolerance used by the built-in suite. Canvas
// rendering is deterministic, so the tolerance only needs to absorb PNG
// round-trip effects.
const DefaultTolerance = 1e-3

const imageExtension = ".png"

// ImageComparison wraps a test function that renders figures. After the
// function returns, every figure left open in the registry is rendered to
// the output directory and compared against the baseline image of the same
// name. The number of open figures must equal the number of image names.
type ImageComparison struct {
	// ImageNames are the baseline image names, without extension, in the
	// order the test opens its figures.
	ImageNames []string
	// Tolerance is the maximum RMS difference that still counts as a match.
	// A difference exactly equal to the tolerance passes.
	Tolerance float64
}

// Wrap returns a test function that runs action and then performs the image
// comparisons. The returned function is registered under the test's own name
// via T.Run, so wrapping does not change how a test is discovered or
// selected by filters.
func (ic ImageComparison) Wrap(action func(*T)) func(*T) {
	return func(t *T) {
		ic.runComparisons(t, action)
	}
}

func (ic ImageComparison) runComparisons(t *T, action func(*T)) {
	registry := t.env.registry

	if n := registry.Count(); n > 0 {
		t.Warnf("%d figures existed before running the %s test. All figures should be closed after they run. They will be closed automatically now.",
			n, t.ID())
		registry.CloseAll()
	}

	// Figures are always drained, even when a comparison fails the test and
	// unwinds through FailNow, or the test function itself panics.
	defer registry.CloseAll()

	action(t)

	collected := registry.List()
	if len(collected) != len(ic.ImageNames) {
		t.Errorf("Expected %d figures (based on the number of image result filenames), but there are %d figures available. The most likely reason for this is that this test is producing too many figures, or that a test run prior to this one has not closed its figures.",
			len(ic.ImageNames), len(collected))
		t.FailNow() // nothing is compared when the count is wrong
	}

	testName := sanitizeTestName(t.ID())
	for i, imageName := range ic.ImageNames {
		ic.compareFigure(t, testName, imageName, collected[i])
	}
}

// ExpectedPath returns where the baseline image for the given test and image
// name is stored.
func ExpectedPath(baselineDir, testName, imageName string) string {
	return filepath.Join(baselineDir, testName, imageName+imageExtension)
}

// ResultPath returns where the freshly rendered image for the given test and
// image name is written.
func ResultPath(outputDir, testName, imageName string) string {
	return filepath.Join(outputDir, testName, imagecompare.ResultPrefix+imageName+imageExtension)
}

func (ic ImageComparison) compareFigure(t *T, testName, imageName string, fig figures.Figure) {
	expectedPath := ExpectedPath(t.env.baselineDir, testName, imageName)
	resultPath := ResultPath(t.env.outputDir, testName, imageName)
	for _, p := range []string{expectedPath, resultPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Errorf("creating directory for %s: %s", p, err)
			t.FailNow()
		}
	}

	img, err := fig.Render()
	if err != nil {
		t.Errorf("rendering figure for image %q: %s", imageName, err)
		t.FailNow()
	}
	if err := imaging.Save(img, resultPath); err != nil {
		t.Errorf("saving figure to %s: %s", resultPath, err)
		t.FailNow()
	}
	t.Debug("rendered figure to %s", resultPath)

	if _, err := os.Stat(expectedPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("checking baseline %s: %s", expectedPath, err)
			t.FailNow()
		}
		// First run for this image: adopt the result as the baseline.
		t.Warnf("Created image in %s", expectedPath)
		if err := copyFile(resultPath, expectedPath); err != nil {
			t.Errorf("seeding baseline %s: %s", expectedPath, err)
			t.FailNow()
		}
		return
	}

	mismatch, err := imagecompare.Compare(expectedPath, resultPath, ic.Tolerance)
	if err != nil {
		t.Errorf("comparing image %q: %s", imageName, err)
		t.FailNow()
	}
	if mismatch == nil {
		return
	}
	if mismatch.DimsDiffer {
		t.Errorf("Image sizes do not match.\nexpected: %s\nactual:   %s", expectedPath, resultPath)
		return
	}
	t.Errorf("Images were different (RMS: %g, tolerance: %g).\nexpected: %s\nactual:   %s\ndiff:     %s\nIf the new image is correct, replace the baseline with the result file.",
		mismatch.RMS, ic.Tolerance, mismatch.ExpectedPath, mismatch.ResultPath, mismatch.DiffPath)
}

// copyFile copies bytes verbatim so a seeded baseline is identical to the
// result image it came from.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// sanitizeTestName turns a test ID into a single path-safe directory name.
func sanitizeTestName(id framework.TestID) string {
	name := strings.Join(id.Path, "_")
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		}
		return r
	}, name)
}
