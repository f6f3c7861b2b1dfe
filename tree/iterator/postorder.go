package iterator

import "go.lepak.sg/algotrainer/tree"

// PostOrder is an iterator object over a binary tree that yields
// left subtree, right subtree, node.
// The result of mutating the tree while iterating over it is undefined.
type PostOrder struct {
	root, at *tree.Node
	stack    []*tree.Node
	started  bool
}

// NewPostOrder creates a new post-order iterator.
// heightHint works as in NewInOrder.
func NewPostOrder(root *tree.Node, heightHint int) *PostOrder {
	return &PostOrder{
		root:  root,
		stack: make([]*tree.Node, 0, heightHint),
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *PostOrder) Next() bool {
	if !i.started {
		i.started = true
		i.descend(i.root)
	} else if i.at != nil && len(i.stack) > 0 {
		// The top of the stack is the parent of the node we just
		// yielded. If we came up from its left side, its right
		// subtree still has to go first.
		parent := i.stack[len(i.stack)-1]
		if parent.Left == i.at && parent.Right != nil {
			i.descend(parent.Right)
		}
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	return true
}

// descend pushes the path from n down to the first node of n's
// subtree in post-order: go left when possible, otherwise right.
func (i *PostOrder) descend(n *tree.Node) {
	for n != nil {
		i.stack = append(i.stack, n)
		if n.Left != nil {
			n = n.Left
		} else {
			n = n.Right
		}
	}
}

// Item returns the current node of the iterator.
func (i *PostOrder) Item() *tree.Node {
	return i.at
}
