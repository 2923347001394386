package framework

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// TestLogger receives the events of a test run as they happen.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestWarning(id TestID, message string)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                        {}
func (n nullTestLogger) TestError(TestID, error)                   {}
func (n nullTestLogger) TestWarning(TestID, string)                {}
func (n nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                {}

func NullTestLogger() TestLogger { return nullTestLogger{} }

// ConsoleTestLogger prints test progress to standard output in a format
// meant for humans watching a test run.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestWarning(id TestID, message string) {
	color.Yellow("  WARNING: %s", message)
}

func (c *ConsoleTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	if failed {
		color.Red("  FAILED: %s", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		color.Yellow("  SKIPPED: %s", id)
	} else {
		color.Yellow("  SKIPPED: %s (%s)", id, reason)
	}
}

// PrintResults prints the summary line for a completed run, plus the IDs and
// messages of any failed tests.
func PrintResults(results Results) {
	if results.OK() {
		color.Green("All tests passed (%d total)", len(results.Tests))
		return
	}
	color.Red("FAILED: %d tests out of %d", len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		fmt.Printf("  [%s]\n", f.TestID)
		for _, e := range f.Errors {
			for _, line := range strings.Split(e.Error(), "\n") {
				fmt.Printf("    %s\n", line)
			}
		}
	}
}
