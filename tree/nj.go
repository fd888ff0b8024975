package tree

import (
	"math"

	"github.com/katalvlaran/phonalign/matrix"
)

// NeighborJoining builds an unrooted tree with the Saitou–Nei criterion.
//
// Stages:
//  1. While more than three clusters remain, join the pair minimizing
//     Q(i,j) = (r−2)·d(i,j) − R_i − R_j over r active clusters.
//  2. Branch lengths: l_i = d(i,j)/2 + (R_i − R_j)/(2(r−2)), l_j = d(i,j) − l_i.
//     A negative length is clamped to 0 and its excess taken from the sister,
//     so l_i + l_j = d(i,j) still holds.
//  3. d(u,k) = (d(i,k) + d(j,k) − d(i,j)) / 2.
//  4. The last three clusters hang from a trifurcating root. Two taxa give a
//     root with two children at d/2 each.
//
// The result has 2n−3 edges for n >= 3.
func NeighborJoining(dm *matrix.DistanceMatrix) (*Tree, error) {
	if err := checkMatrix(dm); err != nil {
		return nil, err
	}
	n := dm.Len()
	d := dm.RowsCopy()
	nodes := make([]*Node, n)
	for i := range nodes {
		nodes[i] = &Node{Name: dm.Label(i)}
	}

	if n == 2 {
		half := d[0][1] / 2
		setLength(nodes[0], half)
		setLength(nodes[1], half)

		return &Tree{Root: &Node{Children: nodes}}, nil
	}

	active := make([]int, n)
	for i := range active {
		active[i] = i
	}
	sums := make([]float64, n)

	for len(active) > 3 {
		r := len(active)
		for _, i := range active {
			s := 0.0
			for _, k := range active {
				s += d[i][k]
			}
			sums[i] = s
		}

		ai, aj, best := -1, -1, math.Inf(1)
		for x := 0; x < r; x++ {
			for y := x + 1; y < r; y++ {
				i, j := active[x], active[y]
				q := float64(r-2)*d[i][j] - sums[i] - sums[j]
				if q < best {
					ai, aj, best = x, y, q
				}
			}
		}
		i, j := active[ai], active[aj]
		dij := d[i][j]

		li := dij/2 + (sums[i]-sums[j])/(2*float64(r-2))
		lj := dij - li
		if li < 0 {
			lj += li
			li = 0
		}
		if lj < 0 {
			li += lj
			lj = 0
		}
		setLength(nodes[i], li)
		setLength(nodes[j], lj)

		for _, k := range active {
			if k == i || k == j {
				continue
			}
			v := (d[i][k] + d[j][k] - dij) / 2
			d[i][k], d[k][i] = v, v
		}
		d[i][i] = 0
		nodes[i] = &Node{Children: []*Node{nodes[i], nodes[j]}}
		active = append(active[:aj], active[aj+1:]...)
	}

	a, b, c := active[0], active[1], active[2]
	setLength(nodes[a], (d[a][b]+d[a][c]-d[b][c])/2)
	setLength(nodes[b], (d[a][b]+d[b][c]-d[a][c])/2)
	setLength(nodes[c], (d[a][c]+d[b][c]-d[a][b])/2)

	return &Tree{Root: &Node{Children: []*Node{nodes[a], nodes[b], nodes[c]}}}, nil
}

// setLength stores a nonnegative branch length.
func setLength(n *Node, l float64) {
	n.Length = math.Max(l, 0)
	n.HasLength = true
}
