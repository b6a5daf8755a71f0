// SPDX-License-Identifier: MIT

// Package pose: functional options.
//
// Design goals:
//   - No global state: each call resolves its own Options.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error), never on user data.
package pose

import (
	"math"
	"math/rand"
)

// Decimals is the fixed rounding precision applied to every stored matrix.
// It absorbs trigonometric noise (e.g. cos(π/2) = 6e-17) before any
// validity check or comparison.
const Decimals = 15

// DefaultEpsilon is the tolerance for orthogonality and |det−1| checks.
const DefaultEpsilon = 1e-12

const panicEpsilonInvalid = "pose: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options holds the effective configuration. Fields are unexported; public
// entry points accept ...Option.
type Options struct {
	eps float64    // >= 0; DefaultEpsilon
	rng *rand.Rand // nil ⇒ math/rand top-level source
}

// WithEpsilon sets the tolerance used when validating supplied matrices.
// Panics when eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRand sets the random source for RandSO2 / RandSO3. A *rand.Rand is
// not goroutine-safe; do not share one across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.rng = r }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// uniform draws from [0,1) using the configured source.
func (o Options) uniform() float64 {
	if o.rng == nil {
		return rand.Float64()
	}

	return o.rng.Float64()
}

// intn draws from [0,n) using the configured source.
func (o Options) intn(n int) int {
	if o.rng == nil {
		return rand.Intn(n)
	}

	return o.rng.Intn(n)
}
