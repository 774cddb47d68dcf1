package kmeans

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gridmill/raster"
)

// Result is the complete output of one clustering run, sized for the
// report renderer: the label grid, per-class membership counts, the final
// centroid table and the loop's stopping statistics.
type Result struct {
	// RunID uniquely identifies the run in downstream metadata.
	RunID uuid.UUID
	// Labels holds 1-based class ids; cells invalid in any band keep the
	// nodata sentinel of the first input band.
	Labels *raster.Band
	// Counts is the final per-class member count, indexed by class-1.
	Counts []int
	// Centroids is the final k×bands centroid table.
	Centroids [][]float64
	// Iterations is the number of iterations actually run.
	Iterations int
	// PercentChanged is the reassigned-cell percentage of the last iteration.
	PercentChanged float64
	// Reason records whether the loop converged or exhausted its budget.
	Reason StopReason
}

// DistanceTable returns the symmetric k×k matrix of Euclidean distances
// between final centroids, for the report's centroid distance analysis.
// Complexity: O(k²·bands).
func (r *Result) DistanceTable() [][]float64 {
	k := len(r.Centroids)
	table := make([][]float64, k)
	for a := 0; a < k; a++ {
		table[a] = make([]float64, k)
		for b := 0; b < k; b++ {
			table[a][b] = floats.Distance(r.Centroids[a], r.Centroids[b], 2)
		}
	}
	return table
}
