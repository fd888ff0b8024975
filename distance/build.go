package distance

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/matrix"
	"github.com/katalvlaran/phonalign/pairwise"
	"github.com/katalvlaran/phonalign/scoring"
	"github.com/katalvlaran/phonalign/sequence"
)

var (
	// ErrTooFewSequences is returned for fewer than two sequences.
	ErrTooFewSequences = fmt.Errorf("distance: need at least 2 sequences: %w", phonalign.ErrInsufficientData)

	// ErrTaxaMismatch is returned when len(taxa) != len(seqs).
	ErrTaxaMismatch = fmt.Errorf("distance: taxa and sequences differ in count: %w", phonalign.ErrMalformedInput)

	// ErrUnequalRows is returned by MetricHamming for rows of different length.
	ErrUnequalRows = fmt.Errorf("distance: aligned rows differ in length: %w", phonalign.ErrMalformedInput)

	// ErrUnknownMetric is returned for an out-of-range Metric.
	ErrUnknownMetric = fmt.Errorf("distance: unknown metric: %w", phonalign.ErrConfiguration)
)

// Metric selects how one pair is turned into a distance.
type Metric int

const (
	// MetricAlignment aligns the pair and normalizes the score.
	MetricAlignment Metric = iota
	// MetricEdit is the Levenshtein distance over the longer length.
	MetricEdit
	// MetricHamming compares aligned rows column by column.
	MetricHamming
)

// String returns the name accepted by ParseMetric.
func (m Metric) String() string {
	switch m {
	case MetricAlignment:
		return "alignment"
	case MetricEdit:
		return "edit"
	case MetricHamming:
		return "hamming"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric maps a metric name to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alignment", "sca", "":
		return MetricAlignment, nil
	case "edit", "levenshtein":
		return MetricEdit, nil
	case "hamming", "p":
		return MetricHamming, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMetric)
	}
}

// Option configures Build.
type Option func(*options)

type options struct {
	workers  int
	logger   *zap.Logger
	metric   Metric
	pairwise []pairwise.Option
}

// WithWorkers bounds the number of concurrent pair jobs. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("distance: WithWorkers: n must be >= 1")
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("distance: WithLogger: nil logger")
	}

	return func(o *options) { o.logger = l }
}

// WithMetric selects the pair metric.
func WithMetric(m Metric) Option {
	return func(o *options) { o.metric = m }
}

// WithPairwiseOptions forwards options to pairwise.Distance.
func WithPairwiseOptions(opts ...pairwise.Option) Option {
	return func(o *options) { o.pairwise = append(o.pairwise, opts...) }
}

func gatherOptions(opts []Option) options {
	o := options{workers: runtime.GOMAXPROCS(0), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Build is BuildContext with context.Background().
func Build(seqs []sequence.Sequence, taxa []string, s scoring.Scorer, opts ...Option) (*matrix.DistanceMatrix, error) {
	return BuildContext(context.Background(), seqs, taxa, s, opts...)
}

// BuildContext computes the N×N distance matrix of seqs labelled by taxa.
//
// The scorer is required by MetricAlignment only. Cancelling ctx stops
// scheduling new pairs and returns ctx.Err().
func BuildContext(ctx context.Context, seqs []sequence.Sequence, taxa []string, s scoring.Scorer, opts ...Option) (*matrix.DistanceMatrix, error) {
	o := gatherOptions(opts)
	n := len(seqs)
	if n < 2 {
		return nil, ErrTooFewSequences
	}
	if len(taxa) != n {
		return nil, fmt.Errorf("%d taxa for %d sequences: %w", len(taxa), n, ErrTaxaMismatch)
	}
	pair, err := o.pairFunc(seqs, s)
	if err != nil {
		return nil, err
	}
	dm, err := matrix.NewDistanceMatrix(taxa)
	if err != nil {
		return nil, err
	}

	// Each job owns slot k of the upper triangle in row-major order.
	type job struct{ i, j int }
	jobs := make([]job, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			jobs = append(jobs, job{i, j})
		}
	}
	vals := make([]float64, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for k, jb := range jobs {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			d, err := pair(jb.i, jb.j)
			if err != nil {
				return fmt.Errorf("distance %s/%s: %w", taxa[jb.i], taxa[jb.j], err)
			}
			vals[k] = d

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for k, jb := range jobs {
		if err := dm.Set(jb.i, jb.j, vals[k]); err != nil {
			return nil, err
		}
	}
	o.logger.Debug("distance matrix built",
		zap.Int("taxa", n),
		zap.Int("pairs", len(jobs)),
		zap.String("metric", o.metric.String()),
		zap.Int("workers", o.workers))

	return dm, nil
}

func (o options) pairFunc(seqs []sequence.Sequence, s scoring.Scorer) (func(i, j int) (float64, error), error) {
	switch o.metric {
	case MetricAlignment:
		if s == nil {
			return nil, pairwise.ErrNilScorer
		}

		return func(i, j int) (float64, error) {
			return pairwise.Distance(seqs[i], seqs[j], s, o.pairwise...)
		}, nil
	case MetricEdit:
		return func(i, j int) (float64, error) {
			return pairwise.EditDistance(seqs[i], seqs[j]), nil
		}, nil
	case MetricHamming:
		for i := 1; i < len(seqs); i++ {
			if len(seqs[i]) != len(seqs[0]) {
				return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(seqs[i]), len(seqs[0]), ErrUnequalRows)
			}
		}

		return func(i, j int) (float64, error) {
			return Hamming(seqs[i], seqs[j]), nil
		}, nil
	default:
		return nil, ErrUnknownMetric
	}
}

// Hamming returns the share of differing columns among the columns where
// neither row has a gap. Rows without such a column are at distance 1.
// Callers guarantee len(a) == len(b).
func Hamming(a, b sequence.Sequence) float64 {
	compared, diff := 0, 0
	for k := range a {
		if sequence.IsGap(a[k]) || sequence.IsGap(b[k]) {
			continue
		}
		compared++
		if a[k] != b[k] {
			diff++
		}
	}
	if compared == 0 {
		return 1
	}

	return float64(diff) / float64(compared)
}
