// Package raster defines access contracts and sentinel errors for the
// gridmill grid data model.
package raster

import "errors"

// Sentinel errors for raster construction and mutation.
var (
	// ErrEmptyGrid indicates an input grid with no rows or no columns.
	ErrEmptyGrid = errors.New("raster: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrNoBands indicates a stack constructed without any bands.
	ErrNoBands = errors.New("raster: stack requires at least one band")
	// ErrExtentMismatch indicates bands whose rows×cols extents differ.
	ErrExtentMismatch = errors.New("raster: all bands must share the same rows and columns")
	// ErrRowOutOfRange indicates a row index outside the band extent.
	ErrRowOutOfRange = errors.New("raster: row index out of range")
	// ErrRowLength indicates a row write whose length differs from the band width.
	ErrRowLength = errors.New("raster: row length must equal the band column count")
)

// Grid is read-only random access to one band of samples.
//
// Value returns the band's nodata sentinel for any (row, col) outside the
// extent; sliding-window consumers rely on this to skip boundary slices
// without wraparound or reflection.
type Grid interface {
	// Value returns the sample at (row, col), or the nodata sentinel when
	// the cell is missing or out of extent.
	Value(row, col int) float64
	// Rows returns the number of rows in the grid.
	Rows() int
	// Cols returns the number of columns in the grid.
	Cols() int
	// Nodata returns the sentinel marking missing samples.
	Nodata() float64
	// Min returns the smallest valid sample, or nodata if none exist.
	Min() float64
	// Max returns the largest valid sample, or nodata if none exist.
	Max() float64
}

// RowWriter is bulk write access to a destination grid, one complete row
// at a time. Aggregators are the single writer of any RowWriter; no
// synchronization is provided or required.
type RowWriter interface {
	// SetRow replaces row with values. Returns ErrRowOutOfRange or
	// ErrRowLength on a misdirected write.
	SetRow(row int, values []float64) error
}
