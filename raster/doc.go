// Package raster provides the in-memory grid primitives shared by every
// gridmill algorithm: single bands, co-registered multi-band stacks, and
// the read/write access contracts the processing engines consume.
//
// 🚀 What is raster?
//
//	A nodata-aware data model for whole-image processing:
//	  • Band  — one rows×cols layer of float64 samples with a nodata sentinel
//	  • Stack — ordered co-registered bands validated once for equal extents
//	  • Grid  — read-only random access (out-of-extent reads yield nodata)
//	  • RowWriter — bulk write of one complete output row at a time
//
// ✨ Key guarantees:
//   - Out-of-extent reads return the nodata sentinel, never panic — window
//     filters skip boundary slices without special-casing edges.
//   - Min/Max are computed over valid samples only and cached; mutating a
//     row invalidates the cache.
//   - Stack extents are checked once at construction and never re-validated
//     mid-run.
//
// ⚙️ Usage:
//
//	band, err := raster.FromValues(values, -9999)
//	stack, err := raster.NewStack(band1, band2, band3)
//	tuple := make([]float64, stack.Bands())
//	ok := stack.Tuple(row, col, tuple) // false when any band is nodata
//
// Reading and writing concrete raster file formats is out of scope; callers
// adapt their own I/O to the Grid and RowWriter contracts.
package raster
