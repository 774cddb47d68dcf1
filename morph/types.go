// Package morph defines options and sentinel errors for the sliding
// extremum filters.
package morph

import "errors"

// Sentinel errors for filter invocation.
var (
	// ErrNilGrid indicates a nil input grid.
	ErrNilGrid = errors.New("morph: input grid must not be nil")
)

// Default filter dimensions, matching the conventional 11×11 kernel.
const (
	// DefaultFilterWidth is the default window width.
	DefaultFilterWidth = 11
	// DefaultFilterHeight is the default window height.
	DefaultFilterHeight = 11
)

// Options configures one filter invocation.
//
// Fields:
//   - Width, Height — requested window shape. Values below 3 are clamped
//     to 3 and even values are incremented to the next odd number so a
//     unique centre cell exists; Applied reports the effective shape.
//   - Workers — worker pool size per pass; < 1 means hardware parallelism.
type Options struct {
	Width   int
	Height  int
	Workers int
}

// DefaultOptions returns the defaults: an 11×11 window, hardware
// parallelism.
func DefaultOptions() Options {
	return Options{Width: DefaultFilterWidth, Height: DefaultFilterHeight}
}

// Applied returns the window shape the filter actually uses after
// clamping to ≥3 and rounding even dimensions up to odd. These are the
// values to record in output metadata.
func (o Options) Applied() (width, height int) {
	width, height = o.Width, o.Height
	if width < 3 {
		width = 3
	}
	if height < 3 {
		height = 3
	}
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}
	return width, height
}
