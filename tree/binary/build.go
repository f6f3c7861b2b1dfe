package binary

import (
	"errors"
	"fmt"

	"go.lepak.sg/algotrainer/tree"
	"golang.org/x/exp/slices"
)

var (
	ErrNothingToBuild   = errors.New("nothing to build")
	ErrLengthMismatch   = errors.New("pre- and in-order traversals have different lengths")
	ErrDuplicateLabel   = errors.New("duplicated label in traversal")
	ErrMissingLabel     = errors.New("pre-order label not found in in-order traversal")
	ErrInconsistentWalk = errors.New("traversals do not describe the same tree")
)

// Rebuild reconstructs a tree from its pre- and in-order traversals.
// Labels must be distinct. Node IDs are assigned in pre-order, which
// matches the IDs Generate hands out, so rebuilding a generated tree
// from its traversals gives back an identical tree.
//
// This is the recursive version. Time O(N^2) Space O(N) (stack frames)
func Rebuild(pre, in []string) (*tree.Node, error) {
	if err := checkTraversals(pre, in); err != nil {
		return nil, err
	}

	id := 0
	root, err := rebuildVisit(pre, in, &id)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func rebuildVisit(pre, in []string, id *int) (*tree.Node, error) {
	// N = len(pre) = len(in)
	if len(pre) == 0 {
		return nil, nil
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInconsistentWalk, x)
	}

	inleft, inright := in[0:xi], in[xi+1:]
	preleft, preright := pre[1:xi+1], pre[xi+1:]

	n := tree.NewNode(*id, x)
	*id++

	var err error
	if n.Left, err = rebuildVisit(preleft, inleft, id); err != nil {
		return nil, err
	}
	if n.Right, err = rebuildVisit(preright, inright, id); err != nil {
		return nil, err
	}

	return n, nil
}

// RebuildIter is Rebuild without recursion.
// Time O(N*H) Space O(N) (1x nodes, 1x the inOrderMap)
func RebuildIter(pre, in []string) (*tree.Node, error) {
	if err := checkTraversals(pre, in); err != nil {
		return nil, err
	}

	inOrderMap := make(map[string]int, len(in))
	for i, v := range in {
		inOrderMap[v] = i
	}

	root := tree.NewNode(0, pre[0])

	for id, toInsert := range pre[1:] {
		// The idea: walk down the tree to find where toInsert should go.
		// Ancestors come earlier in pre-order, so they are already placed.
		toInsertIdx := inOrderMap[toInsert]
		current, parent := root, (*tree.Node)(nil)

		var goLeft bool
		for current != nil {
			goLeft = toInsertIdx < inOrderMap[current.Label]
			if goLeft {
				current, parent = current.Left, current
			} else {
				current, parent = current.Right, current
			}
		}

		n := tree.NewNode(id+1, toInsert)
		if goLeft {
			parent.Left = n
		} else {
			parent.Right = n
		}
	}

	// the walk above trusts its input
	if !slices.Equal(InOrder(root), in) || !slices.Equal(PreOrder(root), pre) {
		return nil, ErrInconsistentWalk
	}

	return root, nil
}

func checkTraversals(pre, in []string) error {
	if len(in) == 0 && len(pre) == 0 {
		return ErrNothingToBuild
	}

	if len(in) != len(pre) {
		return ErrLengthMismatch
	}

	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, v)
		}
		seen[v] = struct{}{}
	}

	for _, v := range pre {
		if _, ok := seen[v]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingLabel, v)
		}
		// a second occurrence in pre will miss here
		delete(seen, v)
	}

	return nil
}
