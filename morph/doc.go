// Package morph implements sliding-window extremum filters over a raster
// grid: Erode (min filter), Dilate (max filter) and Open (erosion followed
// by dilation), the morphological primitives used to suppress features
// smaller than the structuring window.
//
// 🚀 How it works:
//
//	Each output cell is the extremum of all valid samples inside a
//	Width×Height window centred on the cell. Per row, the filter keeps an
//	ordered queue of per-column vertical-slice extrema: the queue is built
//	from scratch at the first column (O(W·H)), then advanced per column by
//	popping the oldest slice and pushing the newly entered one (O(H)),
//	amortizing window maintenance to O(H) per cell.
//
// Nodata semantics:
//   - nodata samples are excluded from every comparison
//   - a window with no valid sample yields nodata
//   - a nodata centre cell yields nodata regardless of its neighbours —
//     the filters never fill gaps
//   - slices outside the grid extent are skipped (no wraparound, no
//     reflection), via the raster.Grid nodata-on-out-of-extent contract
//
// Window shape: both dimensions are forced to at least 3 and to odd values
// (even sizes are incremented) so a unique centre cell exists; use
// Options.Applied to learn the effective shape for output metadata.
//
// ⚙️ Usage:
//
//	opts := morph.DefaultOptions() // 11×11
//	opts.Width, opts.Height = 3, 3
//	opened, err := morph.Open(band, opts)
//
// Rows are processed in parallel with dispatch's Block scheme; each pass
// consumes the previous pass's complete output grid.
//
// Complexity per pass: O(rows·cols·Height) time after the first column of
// each row, O(Width) scratch per worker.
package morph
