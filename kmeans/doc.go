// Package kmeans runs Lloyd-style k-means clustering over the cells of a
// multi-band raster stack, producing a per-cell class label grid plus the
// summary statistics a report renderer needs.
//
// 🚀 Algorithm outline:
//
//  1. Validate configuration (band count, class count, iteration budget,
//     change threshold, minimum class size) before touching any sample.
//  2. Initialize k centroids: Diagonal (deterministic, evenly spaced along
//     the main diagonal of the band value hyper-rectangle) or Random
//     (multi-band values at k uniformly random cell locations).
//  3. Iterate:
//     a. Assignment — every valid cell is assigned the centroid with the
//     smallest squared Euclidean distance across all bands; ties break
//     to the lowest index (first strict improvement wins). Rows are
//     assigned in parallel via dispatch's Striped scheme; each row's
//     payload carries the label row plus per-class per-band running
//     sums and min/max.
//     b. Aggregation — a single consumer merges accumulators, overwrites
//     the label grid (1-based ids), and counts changed cells; a cell
//     whose stored label is nodata counts as changed.
//     c. Update — classes with count ≥ MinClassSize move to the mean of
//     their members; degenerate classes are reinitialized inside a
//     donor class's per-band value range (see centroids.go).
//     d. Convergence — stop when the percent of changed cells drops
//     below ChangeThreshold, or the iteration budget is exhausted.
//
// Determinism: all randomness (Random init, donor selection, donor-range
// resampling) flows through Options.Rand, so a fixed seed reproduces a run
// exactly. Diagonal init with no degenerate classes is fully deterministic.
//
// ⚙️ Usage:
//
//	opts := kmeans.DefaultOptions()
//	opts.Classes = 5
//	res, err := kmeans.Cluster([]raster.Grid{b1, b2, b3}, opts)
//	// res.Labels, res.Counts, res.Centroids, res.DistanceTable()
//
// Complexity: O(iterations · rows · cols · k · bands) time across the
// worker pool; O(k · bands) state per worker row.
package kmeans
