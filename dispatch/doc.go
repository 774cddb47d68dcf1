// Package dispatch partitions a row index space across a bounded worker
// pool and funnels tagged per-row results back to a single aggregating
// consumer — the "parallel map with tagged reduce" primitive every
// gridmill engine is built on.
//
// 🚀 What is dispatch?
//
//	Given a total row count R, a worker count P, and a pure per-row
//	computation, dispatch produces exactly one tagged result (row, payload)
//	for every row 0..R-1: each row is owned by exactly one worker, and the
//	consumer demultiplexes by the row tag rather than arrival order.
//
// Two partition schemes are provided:
//
//   - Striped — worker t owns rows {r : r mod P == t}. Spreads cost evenly
//     when per-row work varies (clustering assignment).
//   - Block   — worker t owns the contiguous range [t·⌈R/P⌉, (t+1)·⌈R/P⌉)
//     clipped to R. Preserves row locality (sliding-window filters).
//
// Both schemes produce identical result sets; only arrival order differs,
// and no ordering across workers is assumed or required.
//
// ⚙️ Usage:
//
//	results := dispatch.Rows(rows, computeRow, dispatch.Options{
//	    Workers: 8,
//	    Scheme:  dispatch.Striped,
//	})
//	for res := range results {
//	    out.SetRow(res.Row, res.Payload) // keyed by tag, any order
//	}
//
// The pool is created per call and torn down when the channel closes,
// which acts as the barrier before the next pass or iteration. There is
// no cancellation: once a pass starts it runs to completion.
//
// Complexity: O(R · cost(fn)) work across P goroutines, O(P) channel buffer.
package dispatch
