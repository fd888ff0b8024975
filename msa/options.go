package msa

import (
	"math"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/phonalign/tree"
)

// Default values.
const (
	DefaultLibraryWeight = 1.0
	DefaultIterations    = 100
)

// Option configures an Aligner.
type Option func(*options)

type options struct {
	method        tree.Method
	guide         *tree.Tree
	workers       int
	logger        *zap.Logger
	libraryWeight float64
	extend        bool
	iterations    int
	seed          int64
}

func defaultOptions() options {
	return options{
		method:        tree.MethodUPGMA,
		workers:       runtime.GOMAXPROCS(0),
		logger:        zap.NewNop(),
		libraryWeight: DefaultLibraryWeight,
		iterations:    DefaultIterations,
	}
}

// WithGuideMethod selects how the guide tree is built from distances.
func WithGuideMethod(m tree.Method) Option {
	return func(o *options) { o.method = m }
}

// WithGuideTree supplies the guide tree. Its leaves must be the taxa,
// each exactly once.
func WithGuideTree(t *tree.Tree) Option {
	return func(o *options) { o.guide = t }
}

// WithWorkers bounds parallel pairwise work. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("msa: WithWorkers: n must be >= 1")
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("msa: WithLogger: nil logger")
	}

	return func(o *options) { o.logger = l }
}

// WithLibraryWeight scales library support in Library mode. Panics on a
// negative or non-finite weight.
func WithLibraryWeight(w float64) Option {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic("msa: WithLibraryWeight: weight must be finite and >= 0")
	}

	return func(o *options) { o.libraryWeight = w }
}

// WithLibraryExtension enables triplet extension of the library.
func WithLibraryExtension() Option {
	return func(o *options) { o.extend = true }
}

// WithIterations sets the refinement budget. Panics if n < 0.
func WithIterations(n int) Option {
	if n < 0 {
		panic("msa: WithIterations: n must be >= 0")
	}

	return func(o *options) { o.iterations = n }
}

// WithSeed seeds refinement. Zero selects the package default seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}
