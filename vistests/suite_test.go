package vistests

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoplot/visual-regression-tests/figures"
	"github.com/geoplot/visual-regression-tests/framework"
)

func TestBuiltInSuiteSeedsAndThenPasses(t *testing.T) {
	root := t.TempDir()
	config := SuiteConfig{
		BaselineDir: filepath.Join(root, "baseline_images"),
		OutputDir:   filepath.Join(root, "output"),
	}

	// first run: every baseline is missing, so every image seeds
	logger := &recordingTestLogger{}
	first := RunTestSuite(config, nil, logger)
	require.True(t, first.OK(), "seeding run must not fail")
	assert.NotEmpty(t, logger.warnings)
	for _, w := range logger.warnings {
		assert.Contains(t, w, "Created image in")
	}

	// second run: rendering is deterministic, so everything matches
	logger = &recordingTestLogger{}
	second := RunTestSuite(config, nil, logger)
	assert.True(t, second.OK(), "re-run against seeded baselines must pass")
	assert.Empty(t, logger.warnings)
	assert.Equal(t, len(first.Tests), len(second.Tests))
}

func TestBuiltInSuiteHonorsFilters(t *testing.T) {
	root := t.TempDir()
	config := SuiteConfig{
		BaselineDir: filepath.Join(root, "baseline_images"),
		OutputDir:   filepath.Join(root, "output"),
	}

	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^gradients"))

	logger := &recordingTestLogger{}
	results := RunTestSuite(config, filters.AsFilter, logger)
	require.True(t, results.OK())

	for _, r := range results.Tests {
		if len(r.TestID.Path) > 1 {
			assert.Equal(t, "gradients", r.TestID.Path[0])
		}
	}
}

func TestBuiltInSuiteLeavesNoOpenFigures(t *testing.T) {
	root := t.TempDir()
	registry := figures.NewRegistry()
	config := SuiteConfig{
		BaselineDir: filepath.Join(root, "baseline_images"),
		OutputDir:   filepath.Join(root, "output"),
		Registry:    registry,
	}

	results := RunTestSuite(config, nil, framework.NullTestLogger())
	require.True(t, results.OK())
	assert.Equal(t, 0, registry.Count())
}
