// Package figures provides the figure abstraction and the open-figure
// registry that the comparison harness drains after each test.
//
// The registry plays the role that a plotting toolkit's process-wide figure
// list normally plays, but as an injected value rather than a hidden global,
// so that tests of the harness itself can run in isolation. Canvas is a
// deliberately small raster figure used by the built-in suite; it is not a
// plotting engine.
package figures
