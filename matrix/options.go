// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for distance matrices.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// DefaultEpsilon is the tolerance used by symmetry and diagonal checks.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps           float64 // >= 0; DefaultEpsilon
	symmetrize    bool    // average (i,j) and (j,i) on ingestion instead of rejecting
	allowNegative bool    // accept negative distances (some NJ inputs)
}

// WithEpsilon sets the numeric tolerance. Panics on NaN, Inf or negative eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSymmetrize averages mirrored cells during FromRows/Read instead of
// failing with ErrAsymmetry.
func WithSymmetrize() Option {
	return func(o *Options) { o.symmetrize = true }
}

// WithAllowNegative accepts negative off-diagonal distances.
func WithAllowNegative() Option {
	return func(o *Options) { o.allowNegative = true }
}

func gatherOptions(opts []Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
