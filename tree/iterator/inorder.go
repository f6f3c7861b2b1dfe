package iterator

import "go.lepak.sg/algotrainer/tree"

// InOrder is an iterator object over a binary tree that yields
// left subtree, node, right subtree.
// The result of mutating the tree while iterating over it is undefined.
type InOrder struct {
	root, at *tree.Node
	stack    []*tree.Node
	started  bool
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// Everything up to (1) is pushing the left spine onto i.stack.
// Popping a node is f(n), and the following call to Next
// resumes at (2) by pushing the left spine of n.Right.

// NewInOrder creates a new in-order iterator.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewInOrder(root *tree.Node, heightHint int) *InOrder {
	return &InOrder{
		root:  root,
		stack: make([]*tree.Node, 0, heightHint),
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *InOrder) Next() bool {
	if !i.started {
		i.started = true
		i.pushLeft(i.root)
	} else if i.at != nil {
		i.pushLeft(i.at.Right)
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	return true
}

func (i *InOrder) pushLeft(n *tree.Node) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Item returns the current node of the iterator.
func (i *InOrder) Item() *tree.Node {
	return i.at
}
