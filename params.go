package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/geoplot/visual-regression-tests/framework"
)

const defaultBaselineDir = "baseline_images"
const defaultOutputDir = "output"

type commandParams struct {
	baselineDir string
	outputDir   string
	filters     framework.RegexFilters
	debug       bool
	debugAll    bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.baselineDir, "baselines", defaultBaselineDir, "directory holding the baseline images")
	fs.StringVar(&c.outputDir, "output", defaultOutputDir, "directory for rendered result and diff images")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
