// Package worksheet saves batches of exercises as JSON and prints
// their answer keys.
//
// A saved sheet carries the full tree of every exercise (not just the
// seed), so it stays loadable even if generation changes later.
package worksheet

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.lepak.sg/algotrainer/config"
	"go.lepak.sg/algotrainer/trainer"
	"go.lepak.sg/algotrainer/tree"
)

// Version is written into every sheet. Load rejects other versions.
const Version = 1

var (
	ErrVersion   = errors.New("unsupported worksheet version")
	ErrBadRecord = errors.New("malformed exercise record")
)

type Sheet struct {
	Version   int      `json:"version"`
	MaxDepth  int      `json:"maxDepth"`
	MaxNodes  int      `json:"maxNodes"`
	Exercises []Record `json:"exercises"`
}

// Record is one exercise. Nodes are listed in ID order and refer to
// their children by ID; -1 means no child. The root is Nodes[0].
type Record struct {
	Seed    int64             `json:"seed"`
	Nodes   []NodeRecord      `json:"nodes"`
	Answers map[string]string `json:"answers"`
	Width   int               `json:"width"`
	Height  int               `json:"height"`
}

type NodeRecord struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Left  int     `json:"left"`
	Right int     `json:"right"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

const noChild = -1

// New converts exercises into a Sheet.
func New(cfg config.Config, exercises []*trainer.Exercise) *Sheet {
	return &Sheet{
		Version:  Version,
		MaxDepth: cfg.MaxDepth,
		MaxNodes: cfg.MaxNodes,
		Exercises: lo.Map(exercises, func(e *trainer.Exercise, _ int) Record {
			return newRecord(e)
		}),
	}
}

func newRecord(e *trainer.Exercise) Record {
	var nodes []NodeRecord
	var visit func(n *tree.Node)
	visit = func(n *tree.Node) {
		if n == nil {
			return
		}
		p := e.Positions[n]
		nodes = append(nodes, NodeRecord{
			ID:    n.ID,
			Label: n.Label,
			Left:  childID(n.Left),
			Right: childID(n.Right),
			X:     p.X,
			Y:     p.Y,
		})
		visit(n.Left)
		visit(n.Right)
	}
	visit(e.Root)

	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID < nodes[j].ID
	})

	answers := make(map[string]string, len(e.Answers))
	for o, a := range e.Answers {
		answers[o.String()] = a
	}

	return Record{
		Seed:    e.Seed,
		Nodes:   nodes,
		Answers: answers,
		Width:   e.Box.Width,
		Height:  e.Box.Height,
	}
}

func childID(n *tree.Node) int {
	if n == nil {
		return noChild
	}
	return n.ID
}

// Tree rebuilds the tree described by r. The result is checked with
// tree.Validate, so a record with shared or cyclic children is
// rejected rather than returned.
func (r Record) Tree() (*tree.Node, error) {
	if len(r.Nodes) == 0 {
		return nil, errors.Wrap(ErrBadRecord, "no nodes")
	}

	byID := make(map[int]*tree.Node, len(r.Nodes))
	for _, nr := range r.Nodes {
		if _, ok := byID[nr.ID]; ok {
			return nil, errors.Wrapf(ErrBadRecord, "duplicate id %d", nr.ID)
		}
		byID[nr.ID] = tree.NewNode(nr.ID, nr.Label)
	}

	child := func(id int) (*tree.Node, error) {
		if id == noChild {
			return nil, nil
		}
		n, ok := byID[id]
		if !ok {
			return nil, errors.Wrapf(ErrBadRecord, "unknown child id %d", id)
		}
		return n, nil
	}

	var err error
	for _, nr := range r.Nodes {
		n := byID[nr.ID]
		if n.Left, err = child(nr.Left); err != nil {
			return nil, err
		}
		if n.Right, err = child(nr.Right); err != nil {
			return nil, err
		}
	}

	root := byID[r.Nodes[0].ID]
	if err := tree.Validate(root); err != nil {
		return nil, errors.Wrap(err, "record tree")
	}
	if tree.Count(root) != len(r.Nodes) {
		return nil, errors.Wrap(ErrBadRecord, "nodes not reachable from the root")
	}

	return root, nil
}

// Rebuild turns every record back into an exercise, recomputing
// answers and layout with cfg. The answers stored in the sheet must
// match the recomputed ones.
func (s *Sheet) Rebuild(cfg config.Config) ([]*trainer.Exercise, error) {
	exercises := make([]*trainer.Exercise, len(s.Exercises))
	for i, r := range s.Exercises {
		root, err := r.Tree()
		if err != nil {
			return nil, errors.Wrapf(err, "exercise %d", i+1)
		}

		e, err := trainer.FromTree(root, cfg, r.Seed)
		if err != nil {
			return nil, errors.Wrapf(err, "exercise %d", i+1)
		}

		for _, o := range trainer.Orders {
			if got := r.Answers[o.String()]; got != e.Answers[o] {
				return nil, errors.Wrapf(ErrBadRecord, "exercise %d: stored %s answer %q, tree gives %q",
					i+1, o, got, e.Answers[o])
			}
		}

		exercises[i] = e
	}
	return exercises, nil
}

// Save writes s as indented JSON to path on fs.
func Save(fs afero.Fs, path string, s *Sheet) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding worksheet")
	}

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing worksheet %s", path)
	}
	return nil
}

// Load reads a sheet written by Save.
func Load(fs afero.Fs, path string) (*Sheet, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading worksheet %s", path)
	}

	var s Sheet
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "decoding worksheet %s", path)
	}

	if s.Version != Version {
		return nil, errors.Wrapf(ErrVersion, "got %d, want %d", s.Version, Version)
	}

	return &s, nil
}

// AnswerKey writes the tree drawing and the three answers of every
// exercise in s to w.
func AnswerKey(w io.Writer, s *Sheet) error {
	for i, r := range s.Exercises {
		root, err := r.Tree()
		if err != nil {
			return errors.Wrapf(err, "exercise %d", i+1)
		}

		if _, err := fmt.Fprintf(w, "Exercise %d (seed %d)\n%s", i+1, r.Seed, root); err != nil {
			return err
		}
		for _, o := range trainer.Orders {
			if _, err := fmt.Fprintf(w, "  %-10s %s\n", o.Title()+":", r.Answers[o.String()]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
