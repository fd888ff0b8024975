package tree

// Node is a tree vertex. Leaves have no children and carry a taxon Name;
// internal nodes may be named too. Length is the branch to the parent and is
// meaningful only when HasLength is set.
type Node struct {
	Name      string
	Length    float64
	HasLength bool
	Comment   string
	Children  []*Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Tree is a rooted view of a phylogeny. Unrooted NJ trees are rooted at
// their final trifurcation.
type Tree struct {
	Root *Node
}

// PostOrder returns every node with children before parents, children in
// left-to-right order. It walks with an explicit stack.
func (t *Tree) PostOrder() []*Node {
	if t == nil || t.Root == nil {
		return nil
	}
	type frame struct {
		n    *Node
		next int // next child to visit
	}
	var out []*Node
	stack := []frame{{n: t.Root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.n.Children) {
			child := top.n.Children[top.next]
			top.next++
			stack = append(stack, frame{n: child})
			continue
		}
		out = append(out, top.n)
		stack = stack[:len(stack)-1]
	}

	return out
}

// Leaves returns leaf names left to right.
func (t *Tree) Leaves() []string {
	var out []string
	for _, n := range t.PostOrder() {
		if n.IsLeaf() {
			out = append(out, n.Name)
		}
	}

	return out
}

// EdgeCount returns the number of parent-child edges.
func (t *Tree) EdgeCount() int {
	nodes := len(t.PostOrder())
	if nodes == 0 {
		return 0
	}

	return nodes - 1
}

// InternalCount returns the number of non-leaf nodes, root included.
func (t *Tree) InternalCount() int {
	c := 0
	for _, n := range t.PostOrder() {
		if !n.IsLeaf() {
			c++
		}
	}

	return c
}
