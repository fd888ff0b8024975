package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/phonalign/distance"
	"github.com/katalvlaran/phonalign/linkcomm"
	"github.com/katalvlaran/phonalign/msa"
	"github.com/katalvlaran/phonalign/pairwise"
	"github.com/katalvlaran/phonalign/scoring"
	"github.com/katalvlaran/phonalign/tree"
)

// Scorer builds the configured Scorer. The matrix model reads MatrixFile.
func (c Config) Scorer() (scoring.Scorer, error) {
	var (
		s   scoring.Scorer
		err error
	)
	switch c.Scoring.Model {
	case "identity":
		def := scoring.DefaultIdentity()
		s, err = scoring.NewIdentity(c.Scoring.Match, c.Scoring.Mismatch, def.GapOpen(), def.GapExtend())
	case "sca":
		s = scoring.DefaultSCA()
	case "matrix":
		s, err = loadMatrix(c.Scoring.MatrixFile)
	default:
		err = fmt.Errorf("%w: scoring model %q", ErrInvalid, c.Scoring.Model)
	}
	if err != nil {
		return nil, err
	}
	if c.Scoring.GapOpen == nil && c.Scoring.GapExtend == nil {
		return s, nil
	}

	open, extend := s.GapOpen(), s.GapExtend()
	if c.Scoring.GapOpen != nil {
		open = *c.Scoring.GapOpen
	}
	if c.Scoring.GapExtend != nil {
		extend = *c.Scoring.GapExtend
	}

	return scoring.WithGaps(s, open, extend)
}

func loadMatrix(path string) (scoring.Scorer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open matrix: %w", err)
	}
	defer f.Close()

	m, err := scoring.LoadMatrix(f)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// PairwiseOptions returns the alignment mode and distance normalization.
func (c Config) PairwiseOptions() ([]pairwise.Option, error) {
	mode, err := pairwise.ParseMode(c.Pairwise.Mode)
	if err != nil {
		return nil, err
	}
	norm := pairwise.NormLonger
	if c.Pairwise.Normalization == "mean" {
		norm = pairwise.NormMean
	}

	return []pairwise.Option{pairwise.WithMode(mode), pairwise.WithNormalization(norm)}, nil
}

// DistanceOptions returns options for distance.Build.
func (c Config) DistanceOptions(logger *zap.Logger) ([]distance.Option, error) {
	metric, err := distance.ParseMetric(c.Distance.Metric)
	if err != nil {
		return nil, err
	}
	popts, err := c.PairwiseOptions()
	if err != nil {
		return nil, err
	}
	opts := []distance.Option{
		distance.WithMetric(metric),
		distance.WithPairwiseOptions(popts...),
		distance.WithLogger(logger),
	}
	if c.Workers > 0 {
		opts = append(opts, distance.WithWorkers(c.Workers))
	}

	return opts, nil
}

// TreeMethod returns the configured tree builder.
func (c Config) TreeMethod() (tree.Method, error) {
	return tree.ParseMethod(c.Tree.Method)
}

// Linkage returns the flat-clustering linkage.
func (c Config) Linkage() (tree.Linkage, error) {
	return tree.ParseLinkage(c.Tree.Linkage)
}

// MSAOptions returns options for msa.New.
func (c Config) MSAOptions(logger *zap.Logger) ([]msa.Option, error) {
	guide, err := tree.ParseMethod(c.MSA.GuideMethod)
	if err != nil {
		return nil, err
	}
	opts := []msa.Option{
		msa.WithGuideMethod(guide),
		msa.WithLibraryWeight(c.MSA.LibraryWeight),
		msa.WithIterations(c.MSA.Iterations),
		msa.WithSeed(c.MSA.Seed),
		msa.WithLogger(logger),
	}
	if c.MSA.LibraryExtension {
		opts = append(opts, msa.WithLibraryExtension())
	}
	if c.Workers > 0 {
		opts = append(opts, msa.WithWorkers(c.Workers))
	}

	return opts, nil
}

// LinkOptions returns options for linkcomm.Cluster.
func (c Config) LinkOptions(logger *zap.Logger) []linkcomm.Option {
	opts := []linkcomm.Option{linkcomm.WithLogger(logger)}
	if c.Link.Threshold != nil {
		opts = append(opts, linkcomm.WithThreshold(*c.Link.Threshold))
	}
	if c.Link.Tanimoto {
		opts = append(opts, linkcomm.WithTanimoto())
	}
	if c.Workers > 0 {
		opts = append(opts, linkcomm.WithWorkers(c.Workers))
	}

	return opts
}

// Level returns the zap level for LogLevel.
func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}
