package vistests

import (
	"github.com/geoplot/visual-regression-tests/figures"
	"github.com/geoplot/visual-regression-tests/framework"
)

type environment struct {
	registry    *figures.Registry
	baselineDir string
	outputDir   string
}

// T represents a test or subtest in the visual test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with some extra features
// such as debug logging that are convenient for our use case. Those features
// are provided by the lower-level framework package.
//
// Every T shares the suite's figure registry; figures opened through
// NewFigure are the ones the comparison harness collects and compares. To
// make test assertions, you can use the assert and require packages, passing
// the *T as if it were a *testing.T.
type T struct {
	context *framework.Context
	env     *environment
}

func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

func (t *T) ID() framework.TestID {
	return t.context.ID()
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

func (t *T) FailNow() {
	t.context.FailNow()
}

func (t *T) Skip() {
	t.context.Skip()
}

func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

func (t *T) Warnf(format string, args ...interface{}) {
	t.context.Warnf(format, args...)
}

func (t *T) Debug(message string, args ...interface{}) {
	t.context.Debug(message, args...)
}

// NewFigure opens a new canvas figure in the suite's figure registry and
// returns it for drawing. The harness, not the test, is responsible for
// closing it.
func (t *T) NewFigure(width, height int) *figures.Canvas {
	fig := figures.NewCanvas(width, height)
	t.env.registry.Open(fig)
	return fig
}

// Registry returns the figure registry shared by the suite.
func (t *T) Registry() *figures.Registry {
	return t.env.registry
}
