package worksheet

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/algotrainer/config"
	"go.lepak.sg/algotrainer/testutils"
	"go.lepak.sg/algotrainer/trainer"
	"go.lepak.sg/algotrainer/tree"
)

func newABDCSheet(t *testing.T) *Sheet {
	e, err := trainer.FromTree(testutils.NewABDC(), config.Default(), 9)
	require.NoError(t, err)
	return New(config.Default(), []*trainer.Exercise{e})
}

func TestNew(t *testing.T) {
	s := newABDCSheet(t)

	assert.Equal(t, Version, s.Version)
	assert.Equal(t, 4, s.MaxDepth)
	assert.Equal(t, 10, s.MaxNodes)
	require.Len(t, s.Exercises, 1)

	r := s.Exercises[0]
	assert.Equal(t, int64(9), r.Seed)
	assert.Equal(t, []NodeRecord{
		{ID: 0, Label: "A", Left: 1, Right: 3, X: 120, Y: 0},
		{ID: 1, Label: "B", Left: 2, Right: -1, X: 60, Y: 80},
		{ID: 2, Label: "D", Left: -1, Right: -1, X: 0, Y: 160},
		{ID: 3, Label: "C", Left: -1, Right: -1, X: 180, Y: 80},
	}, r.Nodes)
	assert.Equal(t, map[string]string{
		"preorder":  "A B D C",
		"inorder":   "D B A C",
		"postorder": "D B C A",
	}, r.Answers)
	assert.Equal(t, 4, r.Width)
	assert.Equal(t, 3, r.Height)
}

func TestSaveLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := config.Default()

	exercises, err := trainer.NewSheet(context.Background(), cfg, trainer.Seeds(3, 12))
	require.NoError(t, err)
	s := New(cfg, exercises)

	require.NoError(t, Save(fs, "/sheets/week1.json", s))

	loaded, err := Load(fs, "/sheets/week1.json")
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	rebuilt, err := loaded.Rebuild(cfg)
	require.NoError(t, err)
	require.Len(t, rebuilt, len(exercises))
	for i, e := range rebuilt {
		assert.Equal(t, exercises[i].Root, e.Root)
		assert.Equal(t, exercises[i].Answers, e.Answers)
		assert.Equal(t, exercises[i].Box, e.Box)
	}
}

func TestLoad_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, "/nope.json")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/garbage.json", []byte("{"), 0o644))
	_, err = Load(fs, "/garbage.json")
	assert.ErrorContains(t, err, "decoding")

	require.NoError(t, afero.WriteFile(fs, "/v2.json", []byte(`{"version": 2}`), 0o644))
	_, err = Load(fs, "/v2.json")
	assert.ErrorIs(t, err, ErrVersion)
}

func TestRecord_Tree(t *testing.T) {
	good := func() Record {
		return newABDCSheet(t).Exercises[0]
	}

	tests := []struct {
		name    string
		modify  func(r *Record)
		wantErr error
	}{
		{
			name:   "ok",
			modify: func(r *Record) {},
		},
		{
			name:    "no nodes",
			modify:  func(r *Record) { r.Nodes = nil },
			wantErr: ErrBadRecord,
		},
		{
			name:    "duplicate id",
			modify:  func(r *Record) { r.Nodes[3].ID = 2 },
			wantErr: ErrBadRecord,
		},
		{
			name:    "unknown child",
			modify:  func(r *Record) { r.Nodes[1].Right = 42 },
			wantErr: ErrBadRecord,
		},
		{
			name:    "shared child",
			modify:  func(r *Record) { r.Nodes[0].Right = 2 },
			wantErr: tree.ErrCycle,
		},
		{
			name:    "cycle",
			modify:  func(r *Record) { r.Nodes[2].Left = 0 },
			wantErr: tree.ErrCycle,
		},
		{
			name:    "unreachable node",
			modify:  func(r *Record) { r.Nodes[0].Right = -1 },
			wantErr: ErrBadRecord,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := good()
			tt.modify(&r)
			root, err := r.Tree()
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, testutils.NewABDC(), root)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, root)
		})
	}
}

func TestRebuild_AnswerMismatch(t *testing.T) {
	s := newABDCSheet(t)
	s.Exercises[0].Answers["inorder"] = "A B C D"

	_, err := s.Rebuild(config.Default())
	assert.ErrorIs(t, err, ErrBadRecord)
}

func TestAnswerKey(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AnswerKey(&buf, newABDCSheet(t)))

	want := "Exercise 1 (seed 9)\n" +
		"A\n" +
		"├─L─B\n" +
		"│   └─L─D\n" +
		"└─R─C\n" +
		"  Pre-order: A B D C\n" +
		"  In-order:  D B A C\n" +
		"  Post-order: D B C A\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}
