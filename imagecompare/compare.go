package imagecompare

import (
	"fmt"
	"image"
	"math"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/orisano/pixelmatch"
)

// ResultPrefix and DiffPrefix are the file name prefixes used for rendered
// output and for the visual diff written on mismatch.
const (
	ResultPrefix = "result-"
	DiffPrefix   = "diff-"
)

// Mismatch describes a comparison whose difference exceeded the tolerance.
type Mismatch struct {
	// RMS is the root-mean-square difference over all 8-bit RGBA channel
	// values, or +Inf when the image dimensions differ.
	RMS           float64
	NumDiffPixels int
	DimsDiffer    bool
	ExpectedPath  string
	ResultPath    string
	// DiffPath is the visual diff image written next to the result file,
	// or empty if none could be written.
	DiffPath string
}

// Compare reads both image files and compares them. It returns (nil, nil)
// when the images match within tolerance, a *Mismatch when they do not, and
// an error only for I/O or decoding problems.
//
// A result whose RMS is exactly equal to the tolerance is a match.
func Compare(expectedPath, resultPath string, tolerance float64) (*Mismatch, error) {
	expectedImg, err := imaging.Open(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("reading expected image: %w", err)
	}
	resultImg, err := imaging.Open(resultPath)
	if err != nil {
		return nil, fmt.Errorf("reading result image: %w", err)
	}

	// Normalize to NRGBA at the origin so differing source formats or
	// bounds offsets cannot skew the comparison.
	expected := imaging.Clone(expectedImg)
	result := imaging.Clone(resultImg)

	if !expected.Bounds().Eq(result.Bounds()) {
		return &Mismatch{
			RMS:          math.Inf(1),
			DimsDiffer:   true,
			ExpectedPath: expectedPath,
			ResultPath:   resultPath,
		}, nil
	}

	rms := rmsDiff(expected.Pix, result.Pix)
	if rms <= tolerance {
		return nil, nil
	}

	m := &Mismatch{
		RMS:          rms,
		ExpectedPath: expectedPath,
		ResultPath:   resultPath,
	}

	var diffImg image.Image
	n, matchErr := pixelmatch.MatchPixel(expected, result, pixelmatch.WriteTo(&diffImg))
	if matchErr == nil {
		m.NumDiffPixels = n
		diffPath := DiffPath(resultPath)
		if saveErr := imaging.Save(diffImg, diffPath); saveErr == nil {
			m.DiffPath = diffPath
		}
	}
	return m, nil
}

// RMS returns the root-mean-square difference between two images of the same
// size, computed over all 8-bit RGBA channel values. Images of different
// sizes have an RMS of +Inf.
func RMS(a, b image.Image) float64 {
	na := imaging.Clone(a)
	nb := imaging.Clone(b)
	if !na.Bounds().Eq(nb.Bounds()) {
		return math.Inf(1)
	}
	return rmsDiff(na.Pix, nb.Pix)
}

func rmsDiff(a, b []uint8) float64 {
	if len(a) == 0 {
		return 0
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(a)))
}

// DiffPath returns where the visual diff for a given result file is written:
// the same directory, with the "result-" prefix replaced by "diff-".
func DiffPath(resultPath string) string {
	dir, base := filepath.Split(resultPath)
	base = strings.TrimPrefix(base, ResultPrefix)
	return filepath.Join(dir, DiffPrefix+base)
}
