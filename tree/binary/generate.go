// Package binary builds, traverses and lays out the small labelled
// binary trees used as traversal exercises.
//
// Trees returned from this package are never mutated afterwards, so
// every traversal and layout function here is safe to call from many
// goroutines on the same tree.
package binary

import (
	"errors"
	"fmt"
	"math/rand"

	"go.lepak.sg/algotrainer/must"
	"go.lepak.sg/algotrainer/tree"
	"golang.org/x/exp/slices"
)

const (
	// Alphabet is the pool node labels are drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	DefaultMaxDepth = 4
	DefaultMaxNodes = 10
)

var (
	// ErrConfig is wrapped by every error Generate returns for bad bounds.
	ErrConfig = errors.New("invalid generation bounds")

	ErrNegativeDepth = fmt.Errorf("%w: max depth must not be negative", ErrConfig)
	ErrNoNodeBudget  = fmt.Errorf("%w: max nodes must be at least 1", ErrConfig)
	ErrTooManyNodes  = fmt.Errorf("%w: max nodes must not exceed %d (alphabet size)",
		ErrConfig, len(Alphabet))

	// ErrAlphabetExhausted means a label was requested after all of
	// Alphabet was used. Validation makes this unreachable from Generate.
	ErrAlphabetExhausted = errors.New("no unused labels left")
)

// ValidateBounds reports whether Generate accepts maxDepth and maxNodes.
func ValidateBounds(maxDepth, maxNodes int) error {
	switch {
	case maxDepth < 0:
		return fmt.Errorf("%w (got %d)", ErrNegativeDepth, maxDepth)
	case maxNodes < 1:
		return fmt.Errorf("%w (got %d)", ErrNoNodeBudget, maxNodes)
	case maxNodes > len(Alphabet):
		return fmt.Errorf("%w (got %d)", ErrTooManyNodes, maxNodes)
	}
	return nil
}

// Generate builds a random binary tree with at most maxNodes nodes,
// none of them deeper than maxDepth-1 (the root is at depth 0).
// Labels are distinct letters of Alphabet.
// The seed for the random shape and labels is a parameter,
// which ensures repeatable results.
//
// A maxDepth of 0 leaves no room for any level, in which case the
// tree is a lone root.
func Generate(maxDepth, maxNodes int, seed int64) (*tree.Node, error) {
	return GenerateRand(rand.New(rand.NewSource(seed)), maxDepth, maxNodes)
}

// GenerateDefault is Generate with DefaultMaxDepth and DefaultMaxNodes.
func GenerateDefault(seed int64) *tree.Node {
	return must.Get(Generate(DefaultMaxDepth, DefaultMaxNodes, seed))
}

// GenerateRand is Generate with a caller-supplied source.
// rd is not safe for concurrent use, so don't share it between
// goroutines calling GenerateRand.
func GenerateRand(rd *rand.Rand, maxDepth, maxNodes int) (*tree.Node, error) {
	if err := ValidateBounds(maxDepth, maxNodes); err != nil {
		return nil, err
	}

	g := &generator{
		rd:       rd,
		maxDepth: maxDepth,
		maxNodes: maxNodes,
		pool:     []byte(Alphabet),
	}

	root, err := g.build(0)
	if err != nil {
		return nil, err
	}

	if root == nil {
		// Only maxDepth == 0 gets here: the root itself is never
		// subject to a coin flip, and maxNodes >= 1.
		root, err = g.newNode()
		if err != nil {
			return nil, err
		}
	}

	return root, nil
}

// ChildProbability is the chance that a node at depth gets a left
// (and, independently, a right) child. It falls off linearly from 0.9
// at the root and bottoms out at 0.3.
func ChildProbability(depth int) float64 {
	p := 0.9 - float64(depth)*0.2
	if p < 0.3 {
		return 0.3
	}
	return p
}

// generator is the state of one Generate call. It never outlives it.
type generator struct {
	rd                 *rand.Rand
	maxDepth, maxNodes int

	// labels not yet handed out
	pool  []byte
	count int
}

func (g *generator) build(depth int) (*tree.Node, error) {
	if g.count >= g.maxNodes || depth >= g.maxDepth {
		return nil, nil
	}

	n, err := g.newNode()
	if err != nil {
		return nil, err
	}

	p := ChildProbability(depth)

	if g.rd.Float64() < p && g.count < g.maxNodes {
		if n.Left, err = g.build(depth + 1); err != nil {
			return nil, err
		}
	}

	if g.rd.Float64() < p && g.count < g.maxNodes {
		if n.Right, err = g.build(depth + 1); err != nil {
			return nil, err
		}
	}

	return n, nil
}

func (g *generator) newNode() (*tree.Node, error) {
	label, err := g.draw()
	if err != nil {
		return nil, err
	}

	n := tree.NewNode(g.count, label)
	g.count++
	return n, nil
}

// draw samples a label without replacement.
func (g *generator) draw() (string, error) {
	if len(g.pool) == 0 {
		return "", ErrAlphabetExhausted
	}

	i := g.rd.Intn(len(g.pool))
	label := string(g.pool[i])
	g.pool = slices.Delete(g.pool, i, i+1)
	return label, nil
}
