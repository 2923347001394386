package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeID(path ...string) TestID {
	return TestID{Path: path}
}

func TestRegexFiltersDefaultToRunningEverything(t *testing.T) {
	var filters RegexFilters
	assert.True(t, filters.AsFilter(makeID("gradients", "ramp")))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("gradients"))

	assert.True(t, filters.AsFilter(makeID("gradients", "ramp")))
	assert.False(t, filters.AsFilter(makeID("graticule", "grid")))
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("relief"))

	assert.True(t, filters.AsFilter(makeID("gradients", "ramp")))
	assert.False(t, filters.AsFilter(makeID("relief", "shaded relief")))
}

func TestRegexFiltersMatchAgainstFullSlashJoinedID(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^gradients/bathymetry ramp$"))

	assert.True(t, filters.AsFilter(makeID("gradients", "bathymetry ramp")))
	assert.False(t, filters.AsFilter(makeID("gradients", "hypsometric panels")))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	assert.Error(t, list.Set("("))
}

func TestRegexListAnyMatch(t *testing.T) {
	var list RegexList
	require.NoError(t, list.Set("aaa"))
	require.NoError(t, list.Set("bbb"))

	assert.True(t, list.AnyMatch("xx aaa yy"))
	assert.True(t, list.AnyMatch("bbb"))
	assert.False(t, list.AnyMatch("ccc"))
}
