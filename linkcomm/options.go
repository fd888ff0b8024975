package linkcomm

import (
	"math"
	"runtime"

	"go.uber.org/zap"
)

// Option configures Cluster.
type Option func(*options)

type options struct {
	threshold float64
	tanimoto  bool
	workers   int
	logger    *zap.Logger
}

func defaultOptions() options {
	return options{
		threshold: math.Inf(1),
		workers:   runtime.GOMAXPROCS(0),
		logger:    zap.NewNop(),
	}
}

// WithThreshold stops merging once 1 − similarity exceeds t. Panics on NaN.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) {
		panic("linkcomm: WithThreshold: NaN threshold")
	}

	return func(o *options) { o.threshold = t }
}

// WithTanimoto scores edge pairs by the Tanimoto coefficient of weighted
// adjacency vectors. Unweighted graphs use weight 1.
func WithTanimoto() Option {
	return func(o *options) { o.tanimoto = true }
}

// WithWorkers bounds the parallel similarity computation. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("linkcomm: WithWorkers: n must be >= 1")
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("linkcomm: WithLogger: nil logger")
	}

	return func(o *options) { o.logger = l }
}
