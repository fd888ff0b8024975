package tree

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/phonalign/matrix"
)

// Linkage is the cluster-to-cluster distance used by agglomeration.
type Linkage int

const (
	// LinkageAverage is size-weighted average linkage (UPGMA).
	LinkageAverage Linkage = iota
	// LinkageSingle is nearest-member linkage.
	LinkageSingle
	// LinkageComplete is farthest-member linkage.
	LinkageComplete
)

// String returns the name accepted by ParseLinkage.
func (l Linkage) String() string {
	switch l {
	case LinkageAverage:
		return "average"
	case LinkageSingle:
		return "single"
	case LinkageComplete:
		return "complete"
	default:
		return fmt.Sprintf("Linkage(%d)", int(l))
	}
}

// ParseLinkage maps "average"/"upgma", "single" or "complete" to a Linkage.
func ParseLinkage(s string) (Linkage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "average", "upgma", "":
		return LinkageAverage, nil
	case "single":
		return LinkageSingle, nil
	case "complete":
		return LinkageComplete, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownLinkage)
	}
}

// cluster is one agglomeration slot.
type cluster struct {
	node    *Node
	size    int
	height  float64
	members []int // taxon indices
}

// agglomerate merges the closest active slots until one remains or the
// closest linkage exceeds limit. merge is called once per join with the
// surviving slot i, the absorbed slot j and their distance.
func agglomerate(dm *matrix.DistanceMatrix, link Linkage, limit float64, merge func(ci, cj *cluster, d float64) *cluster) []*cluster {
	n := dm.Len()
	d := dm.RowsCopy()
	slots := make([]*cluster, n)
	for i := range slots {
		slots[i] = &cluster{
			node:    &Node{Name: dm.Label(i)},
			size:    1,
			members: []int{i},
		}
	}

	for active := n; active > 1; active-- {
		bi, bj, best := -1, -1, math.Inf(1)
		for i := 0; i < n; i++ {
			if slots[i] == nil {
				continue
			}
			for j := i + 1; j < n; j++ {
				if slots[j] == nil {
					continue
				}
				if d[i][j] < best {
					bi, bj, best = i, j, d[i][j]
				}
			}
		}
		if best > limit {
			break
		}

		ci, cj := slots[bi], slots[bj]
		for k := 0; k < n; k++ {
			if slots[k] == nil || k == bi || k == bj {
				continue
			}
			var v float64
			switch link {
			case LinkageSingle:
				v = math.Min(d[bi][k], d[bj][k])
			case LinkageComplete:
				v = math.Max(d[bi][k], d[bj][k])
			default:
				v = (float64(ci.size)*d[bi][k] + float64(cj.size)*d[bj][k]) / float64(ci.size+cj.size)
			}
			d[bi][k], d[k][bi] = v, v
		}
		slots[bi] = merge(ci, cj, best)
		slots[bj] = nil
	}

	out := make([]*cluster, 0, n)
	for _, c := range slots {
		if c != nil {
			out = append(out, c)
		}
	}

	return out
}

func checkMatrix(dm *matrix.DistanceMatrix) error {
	if dm == nil {
		return ErrNilMatrix
	}
	if dm.Len() < 2 {
		return ErrTooFewTaxa
	}

	return dm.Validate()
}

// UPGMA builds a rooted ultrametric tree by average linkage.
//
// Each join of clusters at distance d creates a node at height d/2; a child
// hangs from it with length parent height − child height.
func UPGMA(dm *matrix.DistanceMatrix) (*Tree, error) {
	if err := checkMatrix(dm); err != nil {
		return nil, err
	}
	roots := agglomerate(dm, LinkageAverage, math.Inf(1), func(ci, cj *cluster, d float64) *cluster {
		h := d / 2
		for _, c := range []*cluster{ci, cj} {
			c.node.Length = math.Max(h-c.height, 0)
			c.node.HasLength = true
		}

		return &cluster{
			node:    &Node{Children: []*Node{ci.node, cj.node}},
			size:    ci.size + cj.size,
			height:  h,
			members: append(ci.members, cj.members...),
		}
	})

	return &Tree{Root: roots[0].node}, nil
}

// FlatCluster cuts an agglomerative clustering of dm at threshold: merging
// stops once the closest clusters are farther apart than threshold. The cut
// is inclusive, so taxa at distance 0 still merge at threshold 0.
// Cluster ids are 1..k, numbered by the first taxon (in matrix order) of
// each cluster.
func FlatCluster(dm *matrix.DistanceMatrix, threshold float64, link Linkage) (map[string]int, error) {
	if err := checkMatrix(dm); err != nil {
		return nil, err
	}
	if link < LinkageAverage || link > LinkageComplete {
		return nil, ErrUnknownLinkage
	}
	clusters := agglomerate(dm, link, threshold, func(ci, cj *cluster, _ float64) *cluster {
		return &cluster{
			node:    ci.node,
			size:    ci.size + cj.size,
			members: append(ci.members, cj.members...),
		}
	})

	owner := make([]int, dm.Len())
	for c, cl := range clusters {
		for _, m := range cl.members {
			owner[m] = c
		}
	}
	ids := make(map[int]int, len(clusters))
	out := make(map[string]int, dm.Len())
	for i, c := range owner {
		id, ok := ids[c]
		if !ok {
			id = len(ids) + 1
			ids[c] = id
		}
		out[dm.Label(i)] = id
	}

	return out, nil
}
