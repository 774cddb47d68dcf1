// Package gridmill is an in-memory execution core for whole-image raster
// algorithms — partition a large multi-band grid across parallel workers,
// run a per-row computation, and reassemble the output without losing
// correctness under nodata sentinels.
//
// 🚀 What is gridmill?
//
//	A library that brings together:
//		• Raster primitives: multi-band grids with nodata semantics
//		• Row dispatch: a parallel-map-with-tagged-reduce worker pool
//		• Morphology: sliding-window erosion, dilation and opening
//		• Clustering: Lloyd-style k-means over co-registered bands
//		• Reporting: cluster statistics rendered as HTML charts
//
// ✨ Why choose gridmill?
//
//   - Deterministic by construction – injectable random sources, no globals
//   - Nodata-aware everywhere – missing samples never poison statistics
//   - Single-writer aggregation – workers share nothing, outputs need no locks
//   - Pure Go – no cgo, no format-specific raster I/O baked in
//
// Everything is organized under five subpackages:
//
//	raster/   — Band, Stack, Grid/RowWriter access contracts
//	dispatch/ — row partitioning (striped or block) over a worker pool
//	morph/    — sliding-extremum filters: Erode, Dilate, Open
//	kmeans/   — iterative clustering engine with convergence policy
//	report/   — clustering report rendering and output metadata
//
// Quick ASCII example:
//
//	band 1 ─┐
//	band 2 ─┼─→ dispatch (striped rows) ─→ nearest centroid ─→ label grid
//	band N ─┘
//
// Dive into each package's doc.go for the full contract, and into
// example_test.go files for runnable walkthroughs.
package gridmill
