// Package trainer turns generated trees into traversal exercises:
// a tree, its three ground-truth answers and a layout to draw it with,
// plus the answer checking a front end needs.
package trainer

import (
	"context"
	"errors"
	"math/rand"

	"github.com/samber/lo"
	"go.lepak.sg/algotrainer/config"
	"go.lepak.sg/algotrainer/parallel"
	"go.lepak.sg/algotrainer/tree"
	"go.lepak.sg/algotrainer/tree/binary"
)

var ErrNoTree = errors.New("exercise needs a tree")

// Exercise is one tree to traverse. It is immutable once built and
// may be shared between goroutines.
type Exercise struct {
	Seed int64
	Root *tree.Node

	// Answers holds the Display form of each traversal.
	Answers map[Order]string

	Positions map[*tree.Node]binary.Point
	Box       binary.Box
}

// NewExercise generates a tree within cfg's bounds from seed and
// computes its answers and layout.
func NewExercise(cfg config.Config, seed int64) (*Exercise, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root, err := binary.Generate(cfg.MaxDepth, cfg.MaxNodes, seed)
	if err != nil {
		return nil, err
	}

	return FromTree(root, cfg, seed)
}

// FromTree builds the exercise for an existing tree, for example one
// loaded from a worksheet. The tree is validated first since it did
// not necessarily come from the generator.
func FromTree(root *tree.Node, cfg config.Config, seed int64) (*Exercise, error) {
	if root == nil {
		return nil, ErrNoTree
	}
	if err := tree.Validate(root); err != nil {
		return nil, err
	}

	answers := make(map[Order]string, len(Orders))
	for _, o := range Orders {
		answers[o] = Display(o.Traverse(root))
	}

	return &Exercise{
		Seed:      seed,
		Root:      root,
		Answers:   answers,
		Positions: binary.Layout(root, cfg.NodeSize, cfg.LevelHeight),
		Box:       binary.BoundingBox(root),
	}, nil
}

// Check checks one answer against the exercise.
func (e *Exercise) Check(order Order, answer string) Result {
	return Check(order, answer, e.Answers[order])
}

// CheckAll checks an answer for every Order. Orders missing from
// answers count as empty answers.
func (e *Exercise) CheckAll(answers map[Order]string) []Result {
	return lo.Map(Orders, func(o Order, _ int) Result {
		return e.Check(o, answers[o])
	})
}

// Score counts the correct results.
func Score(results []Result) int {
	return len(lo.Filter(results, func(r Result, _ int) bool {
		return r.Correct
	}))
}

// Seeds derives n exercise seeds from base, so a whole sheet can be
// reproduced from one number.
func Seeds(base int64, n int) []int64 {
	rd := rand.New(rand.NewSource(base))
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rd.Int63()
	}
	return seeds
}

// NewSheet builds one exercise per seed, at most cfg.Workers at a time.
// The exercises come back in seed order. If ctx is canceled, NewSheet
// returns the context error and no exercises.
func NewSheet(ctx context.Context, cfg config.Config, seeds []int64) ([]*Exercise, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return parallel.Map(ctx, seeds, func(ctx context.Context, _ int, seed int64) (*Exercise, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return NewExercise(cfg, seed)
	}, cfg.Workers)
}
