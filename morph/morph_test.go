package morph_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmill/morph"
	"github.com/katalvlaran/gridmill/raster"
)

const nodata = -9999.0

// square3 is a 3×3 window with a single worker for deterministic tests.
func square3() morph.Options {
	return morph.Options{Width: 3, Height: 3, Workers: 1}
}

// randomBand builds a rows×cols band of pseudo-random samples with the
// given fraction of nodata holes, from a fixed seed.
func randomBand(t *testing.T, rows, cols int, holes float64, seed int64) *raster.Band {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([][]float64, rows)
	for r := range values {
		values[r] = make([]float64, cols)
		for c := range values[r] {
			if rng.Float64() < holes {
				values[r][c] = nodata
				continue
			}
			values[r][c] = rng.Float64() * 100
		}
	}
	b, err := raster.FromValues(values, nodata)
	require.NoError(t, err)
	return b
}

//----------------------------------------------------------------------------//
// Window shape
//----------------------------------------------------------------------------//

// TestOptions_Applied verifies clamping to ≥3 and odd-rounding of even sizes.
func TestOptions_Applied(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"EvenRoundsUp", 4, 4, 5, 5},
		{"OddStays", 3, 3, 3, 3},
		{"BelowMinimumClamps", 0, 1, 3, 3},
		{"DefaultStays", 11, 11, 11, 11},
		{"MixedShape", 6, 9, 7, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := morph.Options{Width: tc.width, Height: tc.height}.Applied()
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantH, h)
		})
	}
}

//----------------------------------------------------------------------------//
// Pointwise ordering and idempotence
//----------------------------------------------------------------------------//

// TestErosionDilationBounds verifies erosion(x) ≤ x ≤ dilation(x) pointwise
// wherever both sides are valid, including grids with nodata holes.
func TestErosionDilationBounds(t *testing.T) {
	src := randomBand(t, 20, 25, 0.15, 1)
	opts := morph.Options{Width: 5, Height: 3, Workers: 2}

	eroded, err := morph.Erode(src, opts)
	require.NoError(t, err)
	dilated, err := morph.Dilate(src, opts)
	require.NoError(t, err)

	for r := 0; r < src.Rows(); r++ {
		for c := 0; c < src.Cols(); c++ {
			v := src.Value(r, c)
			if v == nodata {
				assert.Equal(t, nodata, eroded.Value(r, c), "nodata centre must stay nodata at (%d,%d)", r, c)
				assert.Equal(t, nodata, dilated.Value(r, c), "nodata centre must stay nodata at (%d,%d)", r, c)
				continue
			}
			if e := eroded.Value(r, c); e != nodata {
				assert.LessOrEqual(t, e, v, "erosion above input at (%d,%d)", r, c)
			}
			if d := dilated.Value(r, c); d != nodata {
				assert.GreaterOrEqual(t, d, v, "dilation below input at (%d,%d)", r, c)
			}
		}
	}
}

// TestOpen_Idempotent verifies opening(opening(x)) == opening(x) for a
// fixed window.
func TestOpen_Idempotent(t *testing.T) {
	src := randomBand(t, 16, 16, 0, 2)
	opts := morph.Options{Width: 3, Height: 5, Workers: 2}

	once, err := morph.Open(src, opts)
	require.NoError(t, err)
	twice, err := morph.Open(once, opts)
	require.NoError(t, err)

	if diff := cmp.Diff(once.Values(), twice.Values()); diff != "" {
		t.Errorf("opening is not idempotent (-once +twice):\n%s", diff)
	}
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

// TestOpen_RemovesSpike verifies a single isolated high-value pixel on a
// uniform background is erased by a 3×3 opening.
func TestOpen_RemovesSpike(t *testing.T) {
	values := make([][]float64, 5)
	for r := range values {
		values[r] = []float64{1, 1, 1, 1, 1}
	}
	values[2][2] = 9 // the spike
	src, err := raster.FromValues(values, nodata)
	require.NoError(t, err)

	opened, err := morph.Open(src, square3())
	require.NoError(t, err)

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			assert.Equal(t, 1.0, opened.Value(r, c), "cell (%d,%d)", r, c)
		}
	}
}

// TestErode_UniformUnchanged verifies a constant grid is a fixed point of
// both passes.
func TestErode_UniformUnchanged(t *testing.T) {
	values := [][]float64{{4, 4, 4}, {4, 4, 4}, {4, 4, 4}}
	src, err := raster.FromValues(values, nodata)
	require.NoError(t, err)

	eroded, err := morph.Erode(src, square3())
	require.NoError(t, err)
	dilated, err := morph.Dilate(src, square3())
	require.NoError(t, err)

	assert.Equal(t, values, eroded.Values())
	assert.Equal(t, values, dilated.Values())
}

// TestErode_AllNodata verifies an all-nodata grid stays all nodata.
func TestErode_AllNodata(t *testing.T) {
	src, err := raster.New(4, 4, nodata)
	require.NoError(t, err)

	eroded, err := morph.Erode(src, square3())
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, nodata, eroded.Value(r, c))
		}
	}
}

// TestErode_SkipsNodataNeighbours verifies nodata samples are excluded
// from the comparison rather than treated as extreme values.
func TestErode_SkipsNodataNeighbours(t *testing.T) {
	src, err := raster.FromValues([][]float64{
		{5, nodata, 5},
		{5, 7, 5},
		{5, 5, 5},
	}, nodata)
	require.NoError(t, err)

	eroded, err := morph.Erode(src, square3())
	require.NoError(t, err)
	// The hole never wins the min; the centre sees the surrounding 5s.
	assert.Equal(t, 5.0, eroded.Value(1, 1))
}

// TestFilters_NilGrid verifies all three entry points reject a nil grid.
func TestFilters_NilGrid(t *testing.T) {
	_, err := morph.Erode(nil, square3())
	assert.ErrorIs(t, err, morph.ErrNilGrid)
	_, err = morph.Dilate(nil, square3())
	assert.ErrorIs(t, err, morph.ErrNilGrid)
	_, err = morph.Open(nil, square3())
	assert.ErrorIs(t, err, morph.ErrNilGrid)
}
