package vistests

import (
	"github.com/geoplot/visual-regression-tests/figures"
	"github.com/geoplot/visual-regression-tests/framework"
)

// SuiteConfig holds the file locations and the shared figure registry for a
// test run.
type SuiteConfig struct {
	// BaselineDir is where accepted reference images are stored. Missing
	// baselines are seeded from the first run.
	BaselineDir string
	// OutputDir is where rendered result images and visual diffs go.
	OutputDir string
	// Registry is the figure registry shared by all tests in the run. A
	// fresh one is created when nil.
	Registry *figures.Registry
}

// RunTestSuite runs the built-in visual regression tests and returns the
// accumulated results.
func RunTestSuite(
	config SuiteConfig,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	registry := config.Registry
	if registry == nil {
		registry = figures.NewRegistry()
	}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			env: &environment{
				registry:    registry,
				baselineDir: config.BaselineDir,
				outputDir:   config.OutputDir,
			},
		}

		t.Run("gradients", DoGradientTests)
		t.Run("graticule", DoGraticuleTests)
		t.Run("relief", DoReliefTests)
	})
}
