package raster

// Stack is an ordered list of co-registered bands. Extents are validated
// once at construction (ErrExtentMismatch) and never re-checked mid-run;
// cell validity is the only per-access concern.
type Stack struct {
	bands []Grid
	rows  int
	cols  int
}

// NewStack validates that every band shares the same rows×cols extent and
// returns the assembled stack. Returns ErrNoBands for an empty band list.
// Complexity: O(bands) time.
func NewStack(bands ...Grid) (*Stack, error) {
	if len(bands) == 0 {
		return nil, ErrNoBands
	}
	rows, cols := bands[0].Rows(), bands[0].Cols()
	for _, b := range bands[1:] {
		if b.Rows() != rows || b.Cols() != cols {
			return nil, ErrExtentMismatch
		}
	}
	return &Stack{bands: append([]Grid(nil), bands...), rows: rows, cols: cols}, nil
}

// Bands returns the number of bands in the stack.
func (s *Stack) Bands() int { return len(s.bands) }

// Rows returns the shared row count.
func (s *Stack) Rows() int { return s.rows }

// Cols returns the shared column count.
func (s *Stack) Cols() int { return s.cols }

// Band returns the i-th band.
func (s *Stack) Band(i int) Grid { return s.bands[i] }

// Tuple fills dst with the per-band values at (row, col) and reports
// whether the cell is valid. A cell is valid only when no band holds its
// nodata sentinel there; invalid cells must be excluded from statistics
// and never assigned a class. dst must have length Bands().
// Complexity: O(bands).
func (s *Stack) Tuple(row, col int, dst []float64) bool {
	for i, b := range s.bands {
		v := b.Value(row, col)
		dst[i] = v
		if v == b.Nodata() {
			return false
		}
	}
	return true
}
