package iterator

import "go.lepak.sg/algotrainer/tree"

// PreOrder is an iterator object over a binary tree that yields
// node, left subtree, right subtree.
// The result of mutating the tree while iterating over it is undefined.
type PreOrder struct {
	root, at *tree.Node
	stack    []*tree.Node
	started  bool
}

// NewPreOrder creates a new pre-order iterator.
// heightHint works as in NewInOrder.
func NewPreOrder(root *tree.Node, heightHint int) *PreOrder {
	return &PreOrder{
		root:  root,
		stack: make([]*tree.Node, 0, heightHint+1),
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *PreOrder) Next() bool {
	if !i.started {
		i.started = true
		if i.root != nil {
			i.stack = append(i.stack, i.root)
		}
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	// right goes in first so that left comes out first
	if i.at.Right != nil {
		i.stack = append(i.stack, i.at.Right)
	}
	if i.at.Left != nil {
		i.stack = append(i.stack, i.at.Left)
	}

	return true
}

// Item returns the current node of the iterator.
func (i *PreOrder) Item() *tree.Node {
	return i.at
}
