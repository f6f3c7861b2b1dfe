package binary

import "go.lepak.sg/algotrainer/tree"

// PreOrder returns the labels of the tree rooted at root in pre-order:
// node, left subtree, right subtree.
// The empty tree gives an empty (non-nil) slice.
func PreOrder(root *tree.Node) []string {
	return collect(root, VisitPreOrder)
}

// InOrder returns the labels in in-order: left subtree, node, right subtree.
func InOrder(root *tree.Node) []string {
	return collect(root, VisitInOrder)
}

// PostOrder returns the labels in post-order: left subtree, right subtree, node.
func PostOrder(root *tree.Node) []string {
	return collect(root, VisitPostOrder)
}

func collect(root *tree.Node, visit func(*tree.Node, func(*tree.Node) bool)) []string {
	labels := []string{}
	visit(root, func(n *tree.Node) bool {
		labels = append(labels, n.Label)
		return true
	})
	return labels
}

// VisitPreOrder applies f to each node in pre-order.
// If f returns false, the iteration is stopped early.
func VisitPreOrder(root *tree.Node, f func(n *tree.Node) bool) {
	visitPreOrder(root, f)
}

func visitPreOrder(n *tree.Node, f func(*tree.Node) bool) bool {
	if n == nil {
		return true
	}

	return f(n) &&
		visitPreOrder(n.Left, f) &&
		visitPreOrder(n.Right, f)
}

// VisitInOrder applies f to each node in-order.
// If f returns false, the iteration is stopped early.
func VisitInOrder(root *tree.Node, f func(n *tree.Node) bool) {
	visitInOrder(root, f)
}

func visitInOrder(n *tree.Node, f func(*tree.Node) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	if n == nil {
		return true
	}

	return visitInOrder(n.Left, f) &&
		f(n) &&
		visitInOrder(n.Right, f)
}

// VisitPostOrder applies f to each node in post-order.
// If f returns false, the iteration is stopped early.
func VisitPostOrder(root *tree.Node, f func(n *tree.Node) bool) {
	visitPostOrder(root, f)
}

func visitPostOrder(n *tree.Node, f func(*tree.Node) bool) bool {
	if n == nil {
		return true
	}

	return visitPostOrder(n.Left, f) &&
		visitPostOrder(n.Right, f) &&
		f(n)
}
