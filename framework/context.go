package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context represents a test or subtest in progress. It fills the same role as
// Go's *testing.T, but in an environment outside of the "go test" runner. The
// assert and require packages accept a *Context anywhere they would accept a
// *testing.T.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run executes a top-level test action and returns the accumulated results.
// The action normally calls Context.Run to define individual tests.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				// this is the panic we deliberately raise in FailNow
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		// The root context only shows up in the results if something failed
		// outside of any named test.
		if len(c.id.Path) > 0 || c.failed {
			result := TestResult{TestID: c.id, Errors: c.errors, Skipped: c.skipped}
			c.env.results.Tests = append(c.env.results.Tests, result)
			if c.failed {
				c.env.results.Failures = append(c.env.results.Failures, result)
			}
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run executes a named subtest, honoring the run filter and routing its
// start/finish/failure events through the test logger.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Errorf records a test failure but lets the test continue, like testing.T.Errorf.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// FailNow stops the test immediately. As with testing.T, it unwinds the test
// function; deferred cleanup in the test still runs.
func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Warnf reports a non-fatal condition, such as a missing baseline being
// seeded. Warnings appear in the run transcript but do not fail the test.
func (c *Context) Warnf(format string, args ...interface{}) {
	c.env.testLogger.TestWarning(c.id, fmt.Sprintf(format, args...))
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
