package morph

import (
	"math"

	"github.com/katalvlaran/gridmill/dispatch"
	"github.com/katalvlaran/gridmill/raster"
)

// direction selects the comparison an extremum pass optimizes for.
type direction int

const (
	erosion direction = iota
	dilation
)

// Erode computes the minimum filter: each output cell is the smallest
// valid sample in the window centred on it. Returns ErrNilGrid for a nil
// input.
func Erode(src raster.Grid, opts Options) (*raster.Band, error) {
	if src == nil {
		return nil, ErrNilGrid
	}
	return pass(src, opts, erosion), nil
}

// Dilate computes the maximum filter: each output cell is the largest
// valid sample in the window centred on it. Returns ErrNilGrid for a nil
// input.
func Dilate(src raster.Grid, opts Options) (*raster.Band, error) {
	if src == nil {
		return nil, ErrNilGrid
	}
	return pass(src, opts, dilation), nil
}

// Open computes the morphological opening: an erosion pass followed by a
// dilation pass, the dilation consuming the complete erosion output.
// Features smaller than roughly half the window are erased; opening is
// idempotent for a fixed window.
func Open(src raster.Grid, opts Options) (*raster.Band, error) {
	eroded, err := Erode(src, opts)
	if err != nil {
		return nil, err
	}
	return pass(eroded, opts, dilation), nil
}

// pass runs one parallel extremum sweep over src. Each worker owns a
// contiguous block of rows (dispatch.Block) and a private window queue;
// the single consumer writes completed rows into the output band keyed by
// the row tag.
func pass(src raster.Grid, opts Options, dir direction) *raster.Band {
	width, height := opts.Applied()
	mx, my := width/2, height/2
	rows, cols := src.Rows(), src.Cols()
	nodata := src.Nodata()

	// identity is the value a slice extremum starts from; it survives only
	// when the slice holds no valid sample.
	identity := math.Inf(1)
	if dir == dilation {
		identity = math.Inf(-1)
	}

	out, _ := raster.New(rows, cols, nodata)
	results := dispatch.Rows(rows, func(row int) []float64 {
		data := make([]float64, cols)
		for i := range data {
			data[i] = nodata
		}
		queue := make([]float64, 0, width)
		for col := 0; col < cols; col++ {
			if col > 0 {
				queue = queue[1:]
				queue = append(queue, sliceExtremum(src, row-my, row+my, col+mx, nodata, identity, dir))
			} else {
				for c := col - mx; c <= col+mx; c++ {
					queue = append(queue, sliceExtremum(src, row-my, row+my, c, nodata, identity, dir))
				}
			}
			if src.Value(row, col) == nodata {
				continue // never fill gaps
			}
			best := identity
			for _, v := range queue {
				if better(v, best, dir) {
					best = v
				}
			}
			if best != identity {
				data[col] = best
			}
		}
		return data
	}, dispatch.Options{Workers: opts.Workers, Scheme: dispatch.Block})

	for res := range results {
		_ = out.SetRow(res.Row, res.Payload)
	}
	return out
}

// sliceExtremum scans the vertical slice rows [r0, r1] at column col and
// returns its extremum over valid samples, or identity when the slice
// holds none. Out-of-extent cells read as nodata and are skipped.
func sliceExtremum(src raster.Grid, r0, r1, col int, nodata, identity float64, dir direction) float64 {
	best := identity
	for r := r0; r <= r1; r++ {
		v := src.Value(r, col)
		if v == nodata {
			continue
		}
		if better(v, best, dir) {
			best = v
		}
	}
	return best
}

// better reports whether a improves on b for the pass direction.
func better(a, b float64, dir direction) bool {
	if dir == erosion {
		return a < b
	}
	return a > b
}
