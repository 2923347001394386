// Package framework contains the low-level test harness infrastructure that is
// not specific to image comparison.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results outside of the "go test" runner.
//
// 2. Output is routed through a TestLogger so that the same run can be
// rendered on a console, captured in a transcript, or silenced entirely.
//
// 3. Regex-based filters decide which tests in a suite are executed.
//
// The domain-specific code that knows what is being tested -- figure
// rendering, baseline images, comparison tolerances -- lives in the vistests
// package on top of this one.
package framework
