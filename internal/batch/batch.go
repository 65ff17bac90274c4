// SPDX-License-Identifier: MIT

// Package batch fans independent per-vector work out over a bounded
// errgroup. Rollers use it to step the vectors of a state batch, each of
// which owns its scratch buffers, so no synchronisation beyond the group is
// needed.
package batch

import "golang.org/x/sync/errgroup"

// Run calls fn(k) for k in [0, n).
//
// With workers <= 1 (or a single item) the calls run in order on the calling
// goroutine and stop at the first error. Otherwise at most workers calls run
// concurrently and the first non-nil error is returned once all have finished.
func Run(workers, n int, fn func(k int) error) error {
	if workers <= 1 || n <= 1 {
		for k := 0; k < n; k++ {
			if err := fn(k); err != nil {
				return err
			}
		}

		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for k := 0; k < n; k++ {
		k := k // per-iteration copy; go directive predates Go 1.22 loop semantics
		g.Go(func() error { return fn(k) })
	}

	return g.Wait()
}

// Grow returns bufs extended to at least n slots, each of length size.
// Existing slots are resized in place when their capacity allows.
func Grow[T any](bufs [][]T, n, size int) [][]T {
	if len(bufs) < n {
		bufs = append(bufs, make([][]T, n-len(bufs))...)
	}
	for k := range bufs {
		if cap(bufs[k]) >= size {
			bufs[k] = bufs[k][:size]
		} else {
			bufs[k] = make([]T, size)
		}
	}

	return bufs
}
