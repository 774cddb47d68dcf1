package raster

// Band is one rows×cols layer of float64 samples stored row-major, with a
// nodata sentinel and lazily cached min/max over valid samples.
//
// A Band satisfies both Grid and RowWriter. Processing engines treat input
// bands as immutable for the duration of a run and write output bands
// row-by-row from a single aggregating goroutine.
type Band struct {
	rows, cols int
	nodata     float64
	data       []float64

	min, max float64
	statsOK  bool
}

// New returns a rows×cols Band filled with the nodata sentinel.
// Returns ErrEmptyGrid when either dimension is < 1.
func New(rows, cols int, nodata float64) (*Band, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = nodata
	}
	return &Band{rows: rows, cols: cols, nodata: nodata, data: data}, nil
}

// FromValues builds a Band from a non-empty rectangular 2D slice.
// The input is deep-copied to keep the Band independent of the caller.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
// Complexity: O(rows×cols) time and memory.
func FromValues(values [][]float64, nodata float64) (*Band, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	data := make([]float64, 0, rows*cols)
	for _, row := range values {
		data = append(data, row...)
	}
	return &Band{rows: rows, cols: cols, nodata: nodata, data: data}, nil
}

// Rows returns the number of rows.
func (b *Band) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Band) Cols() int { return b.cols }

// Nodata returns the nodata sentinel.
func (b *Band) Nodata() float64 { return b.nodata }

// Value returns the sample at (row, col), or nodata when (row, col) lies
// outside the extent. Complexity: O(1).
func (b *Band) Value(row, col int) float64 {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return b.nodata
	}
	return b.data[row*b.cols+col]
}

// Set overwrites the sample at (row, col). Writes outside the extent are
// ignored, mirroring the nodata-on-out-of-extent read contract.
func (b *Band) Set(row, col int, v float64) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return
	}
	b.data[row*b.cols+col] = v
	b.statsOK = false
}

// SetRow replaces a complete row. Returns ErrRowOutOfRange or ErrRowLength
// on a misdirected write. Complexity: O(cols).
func (b *Band) SetRow(row int, values []float64) error {
	if row < 0 || row >= b.rows {
		return ErrRowOutOfRange
	}
	if len(values) != b.cols {
		return ErrRowLength
	}
	copy(b.data[row*b.cols:(row+1)*b.cols], values)
	b.statsOK = false
	return nil
}

// Min returns the smallest valid sample, or nodata when every cell is nodata.
func (b *Band) Min() float64 {
	b.ensureStats()
	return b.min
}

// Max returns the largest valid sample, or nodata when every cell is nodata.
func (b *Band) Max() float64 {
	b.ensureStats()
	return b.max
}

// Values returns a deep copy of the samples as a rows×cols 2D slice.
func (b *Band) Values() [][]float64 {
	out := make([][]float64, b.rows)
	for r := 0; r < b.rows; r++ {
		out[r] = make([]float64, b.cols)
		copy(out[r], b.data[r*b.cols:(r+1)*b.cols])
	}
	return out
}

// ensureStats recomputes the cached min/max over valid samples.
// Nodata cells are excluded; an all-nodata band reports nodata for both.
func (b *Band) ensureStats() {
	if b.statsOK {
		return
	}
	b.min, b.max = b.nodata, b.nodata
	seen := false
	for _, v := range b.data {
		if v == b.nodata {
			continue
		}
		if !seen {
			b.min, b.max = v, v
			seen = true
			continue
		}
		if v < b.min {
			b.min = v
		}
		if v > b.max {
			b.max = v
		}
	}
	b.statsOK = true
}
