package kmeans

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridmill/dispatch"
	"github.com/katalvlaran/gridmill/raster"
)

// rowAssign is one row's worth of assignment output: the label per column
// (-1 for invalid cells) plus the row's contribution to the per-class
// per-band accumulators. Workers own these privately; the aggregator is
// the only code that merges them.
type rowAssign struct {
	labels []int
	acc    *accumulator
}

// Cluster runs the full clustering loop over the given co-registered bands
// and returns the final label grid and summary statistics.
//
// All configuration is validated up front; no sample is read until the
// options and band extents are known to be sound. The label grid uses
// 1-based class ids with the first band's nodata sentinel elsewhere.
func Cluster(bands []raster.Grid, opts Options) (*Result, error) {
	if len(bands) < 2 {
		return nil, ErrTooFewBands
	}
	stack, err := raster.NewStack(bands...)
	if err != nil {
		return nil, err
	}
	rows, cols := stack.Rows(), stack.Cols()
	cells := rows * cols
	k := opts.Classes
	if k < 2 || k > cells {
		return nil, ErrClassCount
	}
	if opts.MaxIterations < MinIterations || opts.MaxIterations > MaxIterationsLimit {
		return nil, ErrIterations
	}
	if opts.ChangeThreshold < 0 || opts.ChangeThreshold > MaxThreshold {
		return nil, ErrThreshold
	}
	if opts.MinClassSize < 0 || opts.MinClassSize > cells/k {
		return nil, ErrMinClassSize
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	nb := stack.Bands()
	centres := initialCentres(stack, k, opts.Init, rng)

	outNodata := bands[0].Nodata()
	labels, err := raster.New(rows, cols, outNodata)
	if err != nil {
		return nil, err
	}

	policy := Convergence{Threshold: opts.ChangeThreshold, MaxIterations: opts.MaxIterations}
	dopts := dispatch.Options{Workers: opts.Workers, Scheme: dispatch.Striped}

	var (
		validCells     int
		counted        bool
		counts         []int
		percentChanged float64
		reason         StopReason
		iterations     int
	)

	for iteration := 1; ; iteration++ {
		iterations = iteration
		counts = make([]int, k)
		global := newAccumulator(k, nb)
		changed := 0

		// Workers read a frozen copy of the centroids; the live slice is
		// rewritten by the update step after the barrier.
		frozen := cloneCentres(centres)
		results := dispatch.Rows(rows, func(row int) rowAssign {
			return assignRow(stack, frozen, row)
		}, dopts)

		// Single-writer aggregation: merge accumulators, rewrite labels,
		// count reassignments. Nodata in the label grid counts as changed.
		for res := range results {
			ra := res.Payload
			for col, class := range ra.labels {
				if class < 0 {
					continue
				}
				if !counted {
					validCells++
				}
				cur := labels.Value(res.Row, col)
				if cur == outNodata || int(cur)-1 != class {
					changed++
					labels.Set(res.Row, col, float64(class+1))
				}
				counts[class]++
			}
			global.merge(ra.acc)
		}
		counted = true

		updateCentres(centres, global, counts, opts.MinClassSize, rng)

		percentChanged = 0
		if validCells > 0 {
			percentChanged = 100 * float64(changed) / float64(validCells)
		}
		if r := policy.Stop(iteration, percentChanged); r != StopNone {
			reason = r
			break
		}
	}

	return &Result{
		RunID:          uuid.New(),
		Labels:         labels,
		Counts:         counts,
		Centroids:      centres,
		Iterations:     iterations,
		PercentChanged: percentChanged,
		Reason:         reason,
	}, nil
}

// assignRow labels every valid cell of one row with its nearest centroid
// and accumulates the row's per-class sums and min/max. Scratch buffers
// are private to the call.
func assignRow(stack *raster.Stack, centres [][]float64, row int) rowAssign {
	cols := stack.Cols()
	nb := stack.Bands()
	k := len(centres)

	ra := rowAssign{
		labels: make([]int, cols),
		acc:    newAccumulator(k, nb),
	}
	tuple := make([]float64, nb)
	for col := 0; col < cols; col++ {
		if !stack.Tuple(row, col, tuple) {
			ra.labels[col] = -1
			continue
		}
		// Nearest centroid by squared Euclidean distance; strict < means
		// ties resolve to the lowest index encountered first.
		best := 0
		bestDist := math.Inf(1)
		for a := 0; a < k; a++ {
			dist := 0.0
			for i := 0; i < nb; i++ {
				d := tuple[i] - centres[a][i]
				dist += d * d
			}
			if dist < bestDist {
				bestDist = dist
				best = a
			}
		}
		ra.labels[col] = best
		ra.acc.add(best, tuple)
	}
	return ra
}
