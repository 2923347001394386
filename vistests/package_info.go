// Package vistests contains the visual regression tests themselves and their
// supporting API.
//
// The centerpiece is ImageComparison, which wraps a test function that
// renders figures: after the function returns, every figure left open in the
// registry is saved as a PNG and compared against a stored baseline image
// within an RMS tolerance. Missing baselines are seeded from the first run.
//
// Harness infrastructure that is not specific to image testing, such as test
// contexts, filters, and loggers, is in the lower-level framework package.
package vistests
