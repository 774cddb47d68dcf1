package kmeans

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gridmill/raster"
)

// accumulator carries per-class per-band running sums and min/max of the
// assigned cell values. Workers build one per row; the aggregator merges
// them into the global accumulator that feeds the centroid update.
type accumulator struct {
	sums [][]float64
	mins [][]float64
	maxs [][]float64
}

func newAccumulator(k, bands int) *accumulator {
	a := &accumulator{
		sums: make([][]float64, k),
		mins: make([][]float64, k),
		maxs: make([][]float64, k),
	}
	for c := 0; c < k; c++ {
		a.sums[c] = make([]float64, bands)
		a.mins[c] = make([]float64, bands)
		a.maxs[c] = make([]float64, bands)
		for i := 0; i < bands; i++ {
			a.mins[c][i] = math.Inf(1)
			a.maxs[c][i] = math.Inf(-1)
		}
	}
	return a
}

// add folds one cell tuple into class c.
func (a *accumulator) add(c int, tuple []float64) {
	floats.Add(a.sums[c], tuple)
	for i, v := range tuple {
		if v < a.mins[c][i] {
			a.mins[c][i] = v
		}
		if v > a.maxs[c][i] {
			a.maxs[c][i] = v
		}
	}
}

// merge folds another accumulator into a.
func (a *accumulator) merge(other *accumulator) {
	for c := range a.sums {
		floats.Add(a.sums[c], other.sums[c])
		for i := range a.mins[c] {
			if other.mins[c][i] < a.mins[c][i] {
				a.mins[c][i] = other.mins[c][i]
			}
			if other.maxs[c][i] > a.maxs[c][i] {
				a.maxs[c][i] = other.maxs[c][i]
			}
		}
	}
}

// initialCentres places the k starting centroids.
//
// Diagonal: centre a's band-i value is min[i] + (range[i]/k)·a, spreading
// the centres evenly along the main diagonal of the value hyper-rectangle.
//
// Random: the multi-band values at k uniformly random cell locations are
// used verbatim — a sampled location may even hold nodata; the first
// assignment pass corrects any such centre by simply attracting no cells.
func initialCentres(stack *raster.Stack, k int, mode InitMode, rng *rand.Rand) [][]float64 {
	nb := stack.Bands()
	centres := make([][]float64, k)
	for a := range centres {
		centres[a] = make([]float64, nb)
	}
	if mode == Random {
		for a := 0; a < k; a++ {
			row := rng.Intn(stack.Rows())
			col := rng.Intn(stack.Cols())
			for i := 0; i < nb; i++ {
				centres[a][i] = stack.Band(i).Value(row, col)
			}
		}
		return centres
	}
	for a := 0; a < k; a++ {
		for i := 0; i < nb; i++ {
			b := stack.Band(i)
			span := b.Max() - b.Min()
			centres[a][i] = b.Min() + span/float64(k)*float64(a)
		}
	}
	return centres
}

// cloneCentres deep-copies the centroid table so workers can read it while
// the update step rewrites the live one.
func cloneCentres(centres [][]float64) [][]float64 {
	out := make([][]float64, len(centres))
	for a := range centres {
		out[a] = append([]float64(nil), centres[a]...)
	}
	return out
}

// updateCentres replaces every centroid wholesale. Classes with at least
// minSize members move to the arithmetic mean of their cells. Degenerate
// classes are reinitialized by sampling each band uniformly within a donor
// class's observed value range; donor thresholds escalate across the whole
// update step so one large class cannot be drained repeatedly. If no donor
// is found within the attempt budget the centroid is left unchanged for
// this iteration — a documented edge case, not an error.
func updateCentres(centres [][]float64, acc *accumulator, counts []int, minSize int, rng *rand.Rand) {
	k := len(centres)
	donorFloor := make([]int, k)
	for c := range donorFloor {
		donorFloor[c] = minSize * 2
	}
	for a := 0; a < k; a++ {
		if counts[a] >= minSize && counts[a] > 0 {
			copy(centres[a], acc.sums[a])
			floats.Scale(1/float64(counts[a]), centres[a])
			continue
		}
		donor, ok := pickDonor(counts, donorFloor, minSize, rng)
		if !ok {
			continue
		}
		for i := range centres[a] {
			lo, hi := acc.mins[donor][i], acc.maxs[donor][i]
			centres[a][i] = lo + rng.Float64()*(hi-lo)
		}
	}
}

// pickDonor samples classes uniformly at random, up to 10·k attempts,
// until one exceeds its escalating size floor. Each use of a donor raises
// its floor by minSize, so subsequent degenerate classes in the same
// update step prefer other donors.
func pickDonor(counts, donorFloor []int, minSize int, rng *rand.Rand) (int, bool) {
	k := len(counts)
	for attempt := 0; attempt < 10*k; attempt++ {
		cand := rng.Intn(k)
		if counts[cand] > donorFloor[cand] {
			donorFloor[cand] += minSize
			return cand, true
		}
	}
	return 0, false
}
