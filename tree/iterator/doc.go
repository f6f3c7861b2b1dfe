// Package iterator provides pull-style iterators over the trees built
// by tree/binary.
//
// None of the iterators rely on parent pointers (tree.Node has none).
// Each keeps an explicit stack instead, which is at most as deep as
// the tree is tall.
package iterator

import "go.lepak.sg/algotrainer/tree"

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Once Next has returned false it keeps returning false.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := iterator.NewInOrder(root)
//	for i.Next() {
//		n := i.Item()
//		... do stuff with n, or break ...
//	}
type Iterator interface {
	Next() bool
	Item() *tree.Node
}

var (
	_ Iterator = (*PreOrder)(nil)
	_ Iterator = (*InOrder)(nil)
	_ Iterator = (*PostOrder)(nil)
)

// Labels drains i and returns the labels it yielded.
func Labels(i Iterator) []string {
	out := []string{}
	for i.Next() {
		out = append(out, i.Item().Label)
	}
	return out
}
