package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrCycle is returned by Validate when some node can be reached
	// through more than one path, either because a subtree is shared
	// or because a child points back up the tree.
	ErrCycle = errors.New("node reachable through more than one path")
	// ErrDuplicateLabel is returned by Validate when two distinct
	// nodes carry the same label.
	ErrDuplicateLabel = errors.New("duplicate node label")
)

// Validate checks the structural invariants every generated tree
// holds: each node is reached exactly once from the root and labels
// are pairwise distinct. The empty tree is valid.
//
// Validate does not recurse, so a cyclic structure cannot blow the
// stack before it is detected.
func Validate(root *Node) error {
	if root == nil {
		return nil
	}

	seen := make(map[*Node]struct{})
	labels := make(map[string]*Node)
	stack := []*Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := seen[n]; ok {
			return fmt.Errorf("%w: %q (id %d)", ErrCycle, n.Label, n.ID)
		}
		seen[n] = struct{}{}

		if other, ok := labels[n.Label]; ok {
			return fmt.Errorf("%w: %q on ids %d and %d",
				ErrDuplicateLabel, n.Label, other.ID, n.ID)
		}
		labels[n.Label] = n

		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}

	return nil
}
