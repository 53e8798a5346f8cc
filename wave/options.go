// SPDX-License-Identifier: MIT

package wave

// Option configures Compute.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers evaluates screen points on n goroutines. n == 1 is the serial
// path. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("wave: WithWorkers: n must be >= 1")
	}
	return func(o *options) { o.workers = n }
}
