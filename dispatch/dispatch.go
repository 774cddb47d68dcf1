package dispatch

import (
	"runtime"
	"sync"
)

// Scheme selects how rows are partitioned across workers.
type Scheme int

const (
	// Block assigns worker t the contiguous range [t·⌈R/P⌉, (t+1)·⌈R/P⌉)
	// clipped to R, preserving row locality within each worker.
	Block Scheme = iota
	// Striped assigns worker t the rows {r : r mod P == t}, spreading
	// uneven per-row cost across the pool.
	Striped
)

// Options configures one dispatch pass.
//
// Fields:
//   - Workers — pool size; values < 1 default to runtime.NumCPU().
//   - Scheme  — Block or Striped row ownership.
type Options struct {
	Workers int
	Scheme  Scheme
}

// DefaultOptions returns the defaults: hardware parallelism, Block scheme.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU(), Scheme: Block}
}

// Result is one tagged per-row payload. Consumers dispatch the payload to
// the destination row using Row; arrival order carries no meaning.
type Result[T any] struct {
	Row     int
	Payload T
}

// Rows runs fn once for every row in [0, total) across a bounded worker
// pool and returns the channel of tagged results. The channel is closed
// after exactly one result per row has been delivered, so draining it is
// the join point for the pass.
//
// fn must be pure with respect to shared state: it may read immutable
// shared inputs and own private scratch, but must not write anything
// another worker or the consumer touches. A panic inside fn is fatal to
// the whole run.
func Rows[T any](total int, fn func(row int) T, opts Options) <-chan Result[T] {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > total {
		workers = total
	}

	out := make(chan Result[T], workers)
	if total <= 0 {
		close(out)
		return out
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	switch opts.Scheme {
	case Striped:
		for t := 0; t < workers; t++ {
			go func(t int) {
				defer wg.Done()
				for row := t; row < total; row += workers {
					out <- Result[T]{Row: row, Payload: fn(row)}
				}
			}(t)
		}
	default:
		block := (total + workers - 1) / workers
		for t := 0; t < workers; t++ {
			go func(t int) {
				defer wg.Done()
				start := t * block
				end := start + block
				if end > total {
					end = total
				}
				for row := start; row < end; row++ {
					out <- Result[T]{Row: row, Payload: fn(row)}
				}
			}(t)
		}
	}

	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
