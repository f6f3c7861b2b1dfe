// Package tree holds the node type shared by the generator, the
// traversals and the layout engine, plus a few whole-tree queries.
//
// A tree is just its root *Node. The nil *Node is the empty tree and
// every function in this module accepts it.
package tree

// Node is one labelled node of a binary tree. A node owns its Left and
// Right subtrees exclusively: no node is reachable through two paths.
//
// Trees handed out by the generator are never mutated afterwards, so
// they may be read from any number of goroutines at once.
type Node struct {
	// ID is assigned in creation order by whoever builds the tree.
	// It is only used to refer to nodes outside the process
	// (exports); inside the process the *Node itself is the identity.
	ID    int
	Label string

	Left, Right *Node
}

// NewNode returns a leaf.
func NewNode(id int, label string) *Node {
	return &Node{
		ID:    id,
		Label: label,
	}
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + Count(n.Left) + Count(n.Right)
}

// Height returns the number of levels in the tree rooted at n.
// The empty tree has height 0 and a lone root has height 1, so the
// deepest node sits at depth Height(n)-1.
func Height(n *Node) int {
	if n == nil {
		return 0
	}

	l, r := Height(n.Left), Height(n.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Depths returns the depth of every node, the root being at depth 0.
func Depths(n *Node) map[*Node]int {
	depths := make(map[*Node]int)
	visitDepth(n, 0, func(m *Node, d int) {
		depths[m] = d
	})
	return depths
}

func visitDepth(n *Node, depth int, f func(*Node, int)) {
	if n == nil {
		return
	}

	f(n, depth)
	visitDepth(n.Left, depth+1, f)
	visitDepth(n.Right, depth+1, f)
}
