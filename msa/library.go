package msa

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/phonalign/pairwise"
	"github.com/katalvlaran/phonalign/sequence"
)

// library holds residue-pair support for every ordered sequence pair x < y:
// weights[x][y][i][j] supports residue i of x facing residue j of y.
type library struct {
	weights [][][][]float64
}

func (l *library) get(x, i, y, j int) float64 {
	if x == y {
		return 0
	}
	if x > y {
		x, i, y, j = y, j, x, i
	}

	return l.weights[x][y][i][j]
}

// Library aligns all pairs, collects a consistency library and runs a
// progressive pass that rewards library-supported columns.
func (a *Aligner) Library() (Alignment, error) {
	lib, err := a.buildLibrary()
	if err != nil {
		return Alignment{}, err
	}
	if a.opts.extend {
		lib = a.extendLibrary(lib)
	}
	guide, err := a.guideTree()
	if err != nil {
		return Alignment{}, err
	}

	w := a.opts.libraryWeight
	support := func(p, q *profile) [][]float64 {
		return librarySupport(lib, p, q, w)
	}

	return a.progressive(guide, "library", support)
}

// buildLibrary runs every global pairwise alignment in parallel. Each job
// writes only its own weights[x][y] table.
func (a *Aligner) buildLibrary() (*library, error) {
	n := len(a.seqs)
	lib := &library{weights: make([][][][]float64, n)}
	for x := range lib.weights {
		lib.weights[x] = make([][][]float64, n)
	}

	g := new(errgroup.Group)
	g.SetLimit(a.opts.workers)
	for x := 0; x < n; x++ {
		for y := x + 1; y < n; y++ {
			g.Go(func() error {
				aln, err := pairwise.Align(a.seqs[x], a.seqs[y], a.scorer)
				if err != nil {
					return fmt.Errorf("msa: library %s/%s: %w", a.taxa[x], a.taxa[y], err)
				}
				table := newTable(len(a.seqs[x]), len(a.seqs[y]))
				w := aln.Identity()
				i, j := 0, 0
				for k := range aln.A {
					gx, gy := sequence.IsGap(aln.A[k]), sequence.IsGap(aln.B[k])
					if !gx && !gy {
						table[i][j] = w
					}
					if !gx {
						i++
					}
					if !gy {
						j++
					}
				}
				lib.weights[x][y] = table

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.opts.logger.Debug("library built", zap.Int("pairs", n*(n-1)/2))

	return lib, nil
}

func newTable(rows, cols int) [][]float64 {
	t := make([][]float64, rows)
	for i := range t {
		t[i] = make([]float64, cols)
	}

	return t
}

// extendLibrary applies triplet extension: the support of (x_i, y_j) becomes
// its direct weight plus, for every third sequence z and residue k,
// min(w(x_i, z_k), w(z_k, y_j)).
func (a *Aligner) extendLibrary(lib *library) *library {
	n := len(a.seqs)
	out := &library{weights: make([][][][]float64, n)}
	for x := range out.weights {
		out.weights[x] = make([][][]float64, n)
	}
	for x := 0; x < n; x++ {
		for y := x + 1; y < n; y++ {
			table := newTable(len(a.seqs[x]), len(a.seqs[y]))
			for i := range table {
				copy(table[i], lib.weights[x][y][i])
			}
			for z := 0; z < n; z++ {
				if z == x || z == y {
					continue
				}
				for i := range a.seqs[x] {
					for k := range a.seqs[z] {
						wxz := lib.get(x, i, z, k)
						if wxz == 0 {
							continue
						}
						for j := range a.seqs[y] {
							if wzy := lib.get(z, k, y, j); wzy > 0 {
								table[i][j] += min(wxz, wzy)
							}
						}
					}
				}
			}
			out.weights[x][y] = table
		}
	}
	a.opts.logger.Debug("library extended", zap.Int("sequences", n))

	return out
}

// librarySupport averages library weight over all row pairs of a column
// pair and scales it by w.
func librarySupport(lib *library, p, q *profile, w float64) [][]float64 {
	pp, qp := p.positions(), q.positions()
	norm := w / float64(len(p.rows)*len(q.rows))
	out := newTable(p.width(), q.width())
	for i := range out {
		for j := range out[i] {
			var sum float64
			for r, x := range p.members {
				xi := pp[r][i]
				if xi < 0 {
					continue
				}
				for t, y := range q.members {
					if yj := qp[t][j]; yj >= 0 {
						sum += lib.get(x, xi, y, yj)
					}
				}
			}
			out[i][j] = sum * norm
		}
	}

	return out
}
