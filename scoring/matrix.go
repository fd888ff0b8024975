package scoring

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/phonalign"
)

// Defaults for Matrix construction.
const (
	// DefaultGapOpen is the gap-open score of a Matrix built without WithGapOpen.
	DefaultGapOpen = -2.0

	// DefaultGapExtend is the gap-extension score of a Matrix built without WithGapExtend.
	DefaultGapExtend = -1.0

	// DefaultMismatch is the score of any pair missing from the table.
	DefaultMismatch = -1.0
)

// MatrixOption configures NewMatrix.
type MatrixOption func(*matrixConfig)

type matrixConfig struct {
	open, extend float64
	mismatch     float64
	identity     float64
	hasIdentity  bool
}

// WithGapOpen sets the gap-open score (≤ 0).
func WithGapOpen(v float64) MatrixOption {
	return func(c *matrixConfig) { c.open = v }
}

// WithGapExtend sets the gap-extension score (≤ 0).
func WithGapExtend(v float64) MatrixOption {
	return func(c *matrixConfig) { c.extend = v }
}

// WithDefaultMismatch sets the fallback score for pairs absent from the table.
func WithDefaultMismatch(v float64) MatrixOption {
	return func(c *matrixConfig) { c.mismatch = v }
}

// WithIdentity scores every equal pair (a, a) with v unless the table says
// otherwise. Unknown symbols are included: Score("x", "x") == v.
func WithIdentity(v float64) MatrixOption {
	return func(c *matrixConfig) { c.identity, c.hasIdentity = v, true }
}

// Matrix is an immutable substitution table over a finite alphabet.
// Cells are stored densely and indexed by symbol; lookups are O(1).
type Matrix struct {
	index   map[string]int
	symbols []string
	cells   []float64 // len(symbols)², row-major
	cfg     matrixConfig
}

var _ Scorer = (*Matrix)(nil)

// NewMatrix builds a Matrix from nested entries: entries[a][b] is the score
// of (a, b). A missing (b, a) mirrors (a, b); a present but different (b, a)
// is ErrAsymmetricEntry.
//
// Complexity: O(k² + e) for k symbols and e entries.
func NewMatrix(entries map[string]map[string]float64, opts ...MatrixOption) (*Matrix, error) {
	cfg := matrixConfig{open: DefaultGapOpen, extend: DefaultGapExtend, mismatch: DefaultMismatch}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkFinite(cfg.open, cfg.extend, cfg.mismatch, cfg.identity); err != nil {
		return nil, err
	}
	if err := checkGaps(cfg.open, cfg.extend); err != nil {
		return nil, err
	}

	// Collect the alphabet in lexicographic order for a stable layout.
	seen := make(map[string]struct{})
	for a, row := range entries {
		seen[a] = struct{}{}
		for b := range row {
			seen[b] = struct{}{}
		}
	}
	symbols := make([]string, 0, len(seen))
	for s := range seen {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	k := len(symbols)
	m := &Matrix{
		index:   make(map[string]int, k),
		symbols: symbols,
		cells:   make([]float64, k*k),
		cfg:     cfg,
	}
	for i, s := range symbols {
		m.index[s] = i
	}

	set := make([]bool, k*k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			m.cells[i*k+j] = cfg.mismatch
		}
		if cfg.hasIdentity {
			m.cells[i*k+i] = cfg.identity
		}
	}
	for _, a := range symbols {
		row, ok := entries[a]
		if !ok {
			continue
		}
		for b, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("entry (%s,%s): %w", a, b, ErrNonFinite)
			}
			i, j := m.index[a], m.index[b]
			if set[j*k+i] && m.cells[j*k+i] != v {
				return nil, fmt.Errorf("entry (%s,%s): %w", a, b, ErrAsymmetricEntry)
			}
			m.cells[i*k+j], m.cells[j*k+i] = v, v
			set[i*k+j], set[j*k+i] = true, true
		}
	}

	return m, nil
}

// Score implements Scorer. Pairs with an unknown symbol get the default
// mismatch, or the identity score when a == b and WithIdentity was given.
func (m *Matrix) Score(a, b string) float64 {
	i, okA := m.index[a]
	j, okB := m.index[b]
	if okA && okB {
		return m.cells[i*len(m.symbols)+j]
	}
	if a == b && m.cfg.hasIdentity {
		return m.cfg.identity
	}

	return m.cfg.mismatch
}

// GapOpen implements Scorer.
func (m *Matrix) GapOpen() float64 { return m.cfg.open }

// GapExtend implements Scorer.
func (m *Matrix) GapExtend() float64 { return m.cfg.extend }

// Symbols returns the table alphabet in lexicographic order.
func (m *Matrix) Symbols() []string {
	out := make([]string, len(m.symbols))
	copy(out, m.symbols)

	return out
}

// matrixFile is the YAML layout read by LoadMatrix.
//
//	gap_open: -2
//	gap_extend: -1
//	default_mismatch: -1
//	identity: 1
//	scores:
//	  p: {p: 1, b: 0.5}
type matrixFile struct {
	GapOpen         *float64                      `yaml:"gap_open"`
	GapExtend       *float64                      `yaml:"gap_extend"`
	DefaultMismatch *float64                      `yaml:"default_mismatch"`
	Identity        *float64                      `yaml:"identity"`
	Scores          map[string]map[string]float64 `yaml:"scores"`
}

// LoadMatrix decodes a YAML substitution table. Unknown keys are rejected.
func LoadMatrix(r io.Reader) (*Matrix, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f matrixFile
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("scoring: decode matrix: %w: %w", err, phonalign.ErrConfiguration)
	}

	var opts []MatrixOption
	if f.GapOpen != nil {
		opts = append(opts, WithGapOpen(*f.GapOpen))
	}
	if f.GapExtend != nil {
		opts = append(opts, WithGapExtend(*f.GapExtend))
	}
	if f.DefaultMismatch != nil {
		opts = append(opts, WithDefaultMismatch(*f.DefaultMismatch))
	}
	if f.Identity != nil {
		opts = append(opts, WithIdentity(*f.Identity))
	}

	return NewMatrix(f.Scores, opts...)
}
