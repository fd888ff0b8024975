package msa

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/phonalign/distance"
	"github.com/katalvlaran/phonalign/pairwise"
	"github.com/katalvlaran/phonalign/scoring"
	"github.com/katalvlaran/phonalign/sequence"
	"github.com/katalvlaran/phonalign/tree"
)

// Aligner holds validated inputs for multiple alignment. It is read-only
// after New and safe for sequential reuse.
type Aligner struct {
	seqs   []sequence.Sequence
	taxa   []string
	index  map[string]int
	scorer scoring.Scorer
	gaps   pairwise.GapModel
	opts   options
}

// New validates the input set.
//
// Errors:
//   - ErrTooFewSequences for len(seqs) < 2.
//   - ErrTaxaMismatch, ErrEmptyTaxon, ErrDuplicateTaxon, ErrGappedInput.
//   - ErrNilScorer.
func New(seqs []sequence.Sequence, taxa []string, s scoring.Scorer, opts ...Option) (*Aligner, error) {
	if len(seqs) < 2 {
		return nil, ErrTooFewSequences
	}
	if len(taxa) != len(seqs) {
		return nil, fmt.Errorf("%d taxa for %d sequences: %w", len(taxa), len(seqs), ErrTaxaMismatch)
	}
	if s == nil {
		return nil, ErrNilScorer
	}
	index := make(map[string]int, len(taxa))
	for i, t := range taxa {
		if t == "" {
			return nil, fmt.Errorf("taxon %d: %w", i, ErrEmptyTaxon)
		}
		if _, dup := index[t]; dup {
			return nil, fmt.Errorf("%q: %w", t, ErrDuplicateTaxon)
		}
		index[t] = i
		if seqs[i].Gaps() > 0 {
			return nil, fmt.Errorf("%q: %w", t, ErrGappedInput)
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	a := &Aligner{
		seqs:   make([]sequence.Sequence, len(seqs)),
		taxa:   append([]string(nil), taxa...),
		index:  index,
		scorer: s,
		gaps:   pairwise.GapModel{Open: s.GapOpen(), Extend: s.GapExtend()},
		opts:   o,
	}
	for i, seq := range seqs {
		a.seqs[i] = seq.Clone()
	}

	return a, nil
}

// Progressive aligns the sequences along the guide tree.
func (a *Aligner) Progressive() (Alignment, error) {
	guide, err := a.guideTree()
	if err != nil {
		return Alignment{}, err
	}

	return a.progressive(guide, "progressive", nil)
}

// guideTree returns the configured tree or builds one from pairwise
// distances.
func (a *Aligner) guideTree() (*tree.Tree, error) {
	if a.opts.guide != nil {
		if err := a.checkGuide(a.opts.guide); err != nil {
			return nil, err
		}

		return a.opts.guide, nil
	}
	dm, err := distance.Build(a.seqs, a.taxa, a.scorer,
		distance.WithWorkers(a.opts.workers),
		distance.WithLogger(a.opts.logger))
	if err != nil {
		return nil, fmt.Errorf("msa: guide distances: %w", err)
	}
	guide, err := a.opts.method.Build(dm)
	if err != nil {
		return nil, fmt.Errorf("msa: guide tree: %w", err)
	}
	a.opts.logger.Debug("guide tree built",
		zap.String("method", a.opts.method.String()),
		zap.String("newick", guide.Topology()))

	return guide, nil
}

func (a *Aligner) checkGuide(t *tree.Tree) error {
	seen := make([]bool, len(a.taxa))
	leaves := t.Leaves()
	if len(leaves) != len(a.taxa) {
		return fmt.Errorf("%d leaves for %d taxa: %w", len(leaves), len(a.taxa), ErrGuideTree)
	}
	for _, name := range leaves {
		i, ok := a.index[name]
		if !ok || seen[i] {
			return fmt.Errorf("leaf %q: %w", name, ErrGuideTree)
		}
		seen[i] = true
	}

	return nil
}

// supportFunc adds extra column evidence on top of the substitution table.
type supportFunc func(p, q *profile) [][]float64

// progressive merges profiles in guide-tree post-order. Nodes with more than
// two children fold them left to right.
func (a *Aligner) progressive(guide *tree.Tree, stage string, support supportFunc) (Alignment, error) {
	profiles := make(map[*tree.Node]*profile)
	step := 0
	for _, node := range guide.PostOrder() {
		if node.IsLeaf() {
			profiles[node] = leafProfile(a.index[node.Name], a.seqs[a.index[node.Name]])
			continue
		}
		acc := profiles[node.Children[0]]
		for _, child := range node.Children[1:] {
			next := profiles[child]
			var score float64
			acc, score = a.mergeProfiles(acc, next, support)
			step++
			a.opts.logger.Debug("merge",
				zap.String("stage", stage),
				zap.Int("step", step),
				zap.Int("rows", len(acc.rows)),
				zap.Int("columns", acc.width()),
				zap.Float64("score", score))
		}
		for _, child := range node.Children {
			delete(profiles, child)
		}
		profiles[node] = acc
	}

	root := profiles[guide.Root]
	rows := stripGapColumns(root.ordered(len(a.seqs)))

	return Alignment{Taxa: append([]string(nil), a.taxa...), Rows: rows}, nil
}

// mergeProfiles aligns two profiles under the substitution table plus any
// support table.
func (a *Aligner) mergeProfiles(p, q *profile, support supportFunc) (*profile, float64) {
	sub := substitution(p, q, a.scorer)
	if support != nil {
		extra := support(p, q)
		for i := range sub {
			for j := range sub[i] {
				sub[i][j] += extra[i][j]
			}
		}
	}

	return merge(p, q, sub, a.gaps)
}
