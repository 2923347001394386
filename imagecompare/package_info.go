// Package imagecompare compares a freshly rendered image file against a
// stored baseline, reporting a root-mean-square pixel difference and, on
// mismatch, writing a visual diff image alongside the result file.
//
// The per-pixel matching itself is delegated to the pixelmatch library; this
// package only adds the RMS metric, the file handling, and the structured
// result the harness turns into a test failure.
package imagecompare
