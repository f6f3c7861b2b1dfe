package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/algotrainer/config"
	"go.lepak.sg/algotrainer/testutils"
	"go.lepak.sg/algotrainer/trainer"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	err := cmd.Execute()
	return out.String(), err
}

func TestQuiz(t *testing.T) {
	e, err := trainer.FromTree(testutils.NewABDC(), config.Default(), 1)
	require.NoError(t, err)

	in := strings.NewReader("a b  d c\nD B A C\nD B A C\n")
	results, err := quiz(e, trainer.Orders, in)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.True(t, results[0].Correct)
	assert.True(t, results[1].Correct)
	assert.False(t, results[2].Correct)
	assert.Equal(t, "D B C A", results[2].Expected)
	assert.Equal(t, 2, trainer.Score(results))
}

func TestQuiz_LastLineWithoutNewline(t *testing.T) {
	e, err := trainer.FromTree(testutils.NewABDC(), config.Default(), 1)
	require.NoError(t, err)

	results, err := quiz(e, []trainer.Order{trainer.PostOrder}, strings.NewReader("D B C A"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Correct)
}

func TestQuiz_OutOfInput(t *testing.T) {
	e, err := trainer.FromTree(testutils.NewABDC(), config.Default(), 1)
	require.NoError(t, err)

	_, err = quiz(e, trainer.Orders, strings.NewReader("A B D C\n"))
	assert.Error(t, err)
}

func TestWorksheetAndKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.json")

	out, err := run(t, "worksheet", "--seed", "7", "--count", "3", "--out", path, "--key")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Exercise "))

	key, err := run(t, "key", path)
	require.NoError(t, err)
	assert.Equal(t, out, key, "key from the saved sheet matches the one printed when writing it")
	assert.Contains(t, key, "Exercise 1 (seed ")
	assert.Contains(t, key, "Post-order:")
}

func TestKey_Missing(t *testing.T) {
	_, err := run(t, "key", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestBadSettings(t *testing.T) {
	_, err := run(t, "generate", "--max-nodes", "27")
	assert.Error(t, err)

	_, err = run(t, "generate", "--workers", "0")
	assert.Error(t, err)
}

func TestRebuild(t *testing.T) {
	_, err := run(t, "rebuild", "--pre", "A B D C", "--in", "D B A C")
	assert.NoError(t, err)

	_, err = run(t, "rebuild", "--pre", "A B", "--in", "A C")
	assert.Error(t, err)

	_, err = run(t, "rebuild", "--pre", "A")
	assert.Error(t, err, "--in is required")
}
