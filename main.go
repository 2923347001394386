package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/geoplot/visual-regression-tests/framework"
	"github.com/geoplot/visual-regression-tests/vistests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Println("Running visual regression test suite")
	fmt.Printf("  baselines: %s\n", params.baselineDir)
	fmt.Printf("  output:    %s\n", params.outputDir)
	fmt.Println()

	testLogger := &framework.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	config := vistests.SuiteConfig{
		BaselineDir: params.baselineDir,
		OutputDir:   params.outputDir,
	}
	results := vistests.RunTestSuite(config, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To re-run only the failed tests:")
		fmt.Printf("  %s\n", rerunCommand(os.Args[0], params, results))
		os.Exit(1)
	}
}

// rerunCommand builds a shell command that re-runs exactly the tests that
// failed, preserving any non-default directories from this run.
func rerunCommand(program string, params commandParams, results framework.Results) string {
	var b commandBuilder
	b.add(program)
	if params.baselineDir != defaultBaselineDir {
		b.add("-baselines", params.baselineDir)
	}
	if params.outputDir != defaultOutputDir {
		b.add("-output", params.outputDir)
	}
	for _, f := range results.Failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	return b.String()
}
