// SPDX-License-Identifier: MIT

// Package fd1d: functional configuration for the θ-scheme roller.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
package fd1d

// DefaultWorkers steps batch vectors sequentially on the calling goroutine.
const DefaultWorkers = 1

const panicWorkersInvalid = "fd1d: WithWorkers: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the roller configuration.
type Options struct {
	workers int // max concurrent batch vectors per step
}

// WithWorkers bounds the number of batch vectors stepped concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
