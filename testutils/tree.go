// Package testutils holds assertions shared by the tests of several
// packages. It only depends on package tree so that any package
// above it can use it from its internal tests.
package testutils

import (
	"github.com/stretchr/testify/assert"
	"go.lepak.sg/algotrainer/tree"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// AssertGenerated checks everything a tree generated with the given
// bounds must satisfy: it is a proper tree with distinct labels, it is
// not empty, it has at most maxNodes nodes and no node deeper than
// maxDepth-1. A maxDepth of 0 still allows the lone root.
// It returns false if any check failed.
func AssertGenerated(t TestT, root *tree.Node, maxDepth, maxNodes int) bool {
	if !assert.NotNil(t, root, "generated tree is empty") {
		return false
	}

	ok := assert.NoError(t, tree.Validate(root))
	if !ok {
		// Count and Height would not terminate on a cycle
		t.Logf("tree:\n%v", root)
		return false
	}

	ok = assert.LessOrEqual(t, tree.Count(root), maxNodes, "too many nodes") && ok

	levels := maxDepth
	if levels < 1 {
		levels = 1
	}
	ok = assert.LessOrEqual(t, tree.Height(root), levels, "too deep") && ok

	ok = AssertIDs(t, root) && ok

	if !ok {
		t.Logf("tree:\n%v", root)
	}
	return ok
}

// AssertIDs checks that node IDs are 0..n-1 in pre-order, which is
// the order the generator and Rebuild create nodes in.
func AssertIDs(t TestT, root *tree.Node) bool {
	ok := true
	next := 0

	var visit func(n *tree.Node)
	visit = func(n *tree.Node) {
		if n == nil {
			return
		}
		ok = assert.Equal(t, next, n.ID, "id of %q", n.Label) && ok
		next++
		visit(n.Left)
		visit(n.Right)
	}
	visit(root)

	return ok
}

// NewABDC returns the tree A(left=B(left=D), right=C), with IDs in
// pre-order.
func NewABDC() *tree.Node {
	a := tree.NewNode(0, "A")
	a.Left = tree.NewNode(1, "B")
	a.Left.Left = tree.NewNode(2, "D")
	a.Right = tree.NewNode(3, "C")
	return a
}
