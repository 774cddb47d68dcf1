// Package kmeans defines configuration, sentinel errors and the
// convergence policy for the clustering engine.
package kmeans

import (
	"errors"
	"math/rand"
)

// Sentinel errors reported at configuration time, before any sample is read.
var (
	// ErrTooFewBands indicates fewer than two input bands.
	ErrTooFewBands = errors.New("kmeans: at least two input bands are required")
	// ErrClassCount indicates Classes outside [2, rows·cols].
	ErrClassCount = errors.New("kmeans: number of classes must be between 2 and rows x columns")
	// ErrIterations indicates MaxIterations outside [2, 250].
	ErrIterations = errors.New("kmeans: maximum iterations must be between 2 and 250")
	// ErrThreshold indicates ChangeThreshold outside [0, 25].
	ErrThreshold = errors.New("kmeans: class change threshold must be between 0.0 and 25.0")
	// ErrMinClassSize indicates MinClassSize above rows·cols / Classes, or negative.
	ErrMinClassSize = errors.New("kmeans: minimum class size must be non-negative and at most rows x columns / classes")
)

// InitMode selects how the initial centroids are placed.
type InitMode int

const (
	// Diagonal spreads centroid a's band-i value to min[i] + (range[i]/k)·a,
	// evenly along the main diagonal of the value hyper-rectangle.
	// Deterministic.
	Diagonal InitMode = iota
	// Random uses the multi-band values found at k uniformly random cell
	// locations. Nondeterministic unless Options.Rand is seeded.
	Random
)

// Validation domains and defaults.
const (
	// MinIterations is the smallest admissible iteration budget.
	MinIterations = 2
	// MaxIterationsLimit is the largest admissible iteration budget.
	MaxIterationsLimit = 250
	// MaxThreshold is the largest admissible change threshold, in percent.
	MaxThreshold = 25.0

	// DefaultMaxIterations is the default iteration budget.
	DefaultMaxIterations = 10
	// DefaultChangeThreshold is the default convergence threshold, in percent.
	DefaultChangeThreshold = 2.0
	// DefaultMinClassSize is the default degeneracy threshold, in cells.
	DefaultMinClassSize = 10
)

// Options configures one clustering run.
//
// Fields:
//   - Classes         — cluster count k; must lie in [2, rows·cols].
//   - MaxIterations   — iteration budget; must lie in [2, 250].
//   - ChangeThreshold — stop once the percent of reassigned cells drops
//     below this value; must lie in [0, 25].
//   - Init            — Diagonal or Random centroid initialization.
//   - MinClassSize    — classes smaller than this are degenerate and get
//     reinitialized from a donor class; must not exceed rows·cols/Classes.
//   - Workers         — assignment pool size; < 1 means hardware parallelism.
//   - Rand            — random source for Random init and degenerate-class
//     recovery; nil means a time-seeded source. Inject a fixed seed for
//     reproducible runs.
type Options struct {
	Classes         int
	MaxIterations   int
	ChangeThreshold float64
	Init            InitMode
	MinClassSize    int
	Workers         int
	Rand            *rand.Rand
}

// DefaultOptions returns the defaults: 10 iterations, 2% change threshold,
// diagonal initialization, minimum class size 10. Classes has no sensible
// default and must be set by the caller.
func DefaultOptions() Options {
	return Options{
		MaxIterations:   DefaultMaxIterations,
		ChangeThreshold: DefaultChangeThreshold,
		Init:            Diagonal,
		MinClassSize:    DefaultMinClassSize,
	}
}

// StopReason explains why the iteration loop ended.
type StopReason int

const (
	// StopNone means the loop should continue.
	StopNone StopReason = iota
	// StopConverged means the reassigned-cell fraction fell below the
	// threshold.
	StopConverged
	// StopExhausted means the iteration budget ran out before convergence.
	StopExhausted
)

// String returns a short human-readable form of the reason.
func (r StopReason) String() string {
	switch r {
	case StopConverged:
		return "converged"
	case StopExhausted:
		return "exhausted"
	default:
		return "none"
	}
}

// Convergence evaluates, after each iteration, whether to stop: converged
// when percentChanged < Threshold, exhausted when the budget is spent,
// whichever comes first.
type Convergence struct {
	Threshold     float64
	MaxIterations int
}

// Stop returns the decision for the iteration that just completed.
// iteration is 1-based.
func (c Convergence) Stop(iteration int, percentChanged float64) StopReason {
	if percentChanged < c.Threshold {
		return StopConverged
	}
	if iteration >= c.MaxIterations {
		return StopExhausted
	}
	return StopNone
}
