package main

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/internal/nettest"
	"github.com/katalvlaran/cubewalk/puzzle"
	"github.com/katalvlaran/cubewalk/store"
	"github.com/katalvlaran/cubewalk/trace"
)

// writeSample writes the sample puzzle into dir and returns its path.
func writeSample(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(nettest.Sample+"\n\n"+nettest.SamplePath+"\n"), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	err := run(context.Background(), args, &out, log.New(&logs, "", 0))
	return out.String(), logs.String(), err
}

func TestRun_Sample(t *testing.T) {
	input := writeSample(t, t.TempDir())
	out, logs, err := runCLI(t, input)
	require.NoError(t, err)
	assert.Equal(t, "flat: 6032\ncube: 5031\n", out)
	assert.Empty(t, logs)
}

func TestRun_Verbose(t *testing.T) {
	input := writeSample(t, t.TempDir())
	_, logs, err := runCLI(t, "-v", "-input", input)
	require.NoError(t, err)
	assert.Contains(t, logs, "face size 4")
	assert.Contains(t, logs, "face Front  (2,0)")
	assert.Contains(t, logs, "solved in")
}

func TestRun_ExpectedAnswers(t *testing.T) {
	input := writeSample(t, t.TempDir())
	_, _, err := runCLI(t, "-expect-flat", "6032", "-expect-cube", "5031", input)
	require.NoError(t, err)

	_, _, err = runCLI(t, "-expect-cube", "1", input)
	assert.ErrorIs(t, err, puzzle.ErrWrongAnswer)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir)
	cfg := filepath.Join(dir, "cubewalk.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
input: sample.txt
expected:
  flat: 6032
  cube: 5031
trace:
  path: out/trace.jsonl.zst
  level: step
ledger:
  path: answers.db
`), 0o644))

	out, _, err := runCLI(t, "-config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "flat: 6032\ncube: 5031\n", out)

	recs, err := trace.ReadFile(filepath.Join(dir, "out", "trace.jsonl.zst"))
	require.NoError(t, err)
	assert.NotEmpty(t, recs)

	// A flag overrides the file; a wrong expectation now fails.
	_, _, err = runCLI(t, "-config", cfg, "-expect-flat", "7")
	assert.ErrorIs(t, err, puzzle.ErrWrongAnswer)
}

func TestRun_NegativeExpectationClearsConfig(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir)
	cfg := filepath.Join(dir, "cubewalk.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input: sample.txt\nexpected:\n  flat: 1\n  cube: 2\n"), 0o644))

	_, _, err := runCLI(t, "-config", cfg)
	require.ErrorIs(t, err, puzzle.ErrWrongAnswer)

	out, _, err := runCLI(t, "-config", cfg, "-expect-flat", "-1", "-expect-cube", "-1")
	require.NoError(t, err)
	assert.Equal(t, "flat: 6032\ncube: 5031\n", out)

	_, _, err = runCLI(t, "-config", cfg, "-expect-flat", "-1")
	assert.ErrorIs(t, err, puzzle.ErrWrongAnswer, "cube expectation still loaded from the file")
}

func TestRun_Ledger(t *testing.T) {
	dir := t.TempDir()
	input := writeSample(t, dir)
	db := filepath.Join(dir, "answers.db")

	_, _, err := runCLI(t, "-ledger", db, input)
	require.NoError(t, err)

	raw, err := os.ReadFile(input)
	require.NoError(t, err)
	l, err := store.Open(db)
	require.NoError(t, err)
	got, err := l.Lookup(context.Background(), store.Digest(raw))
	require.NoError(t, err)
	assert.Equal(t, 6032, got.Flat)
	assert.Equal(t, 5031, got.Cube)

	// Tamper with the ledger: the next run must disagree with it.
	got.Cube = 1
	require.NoError(t, l.Record(context.Background(), got))
	require.NoError(t, l.Close())

	_, _, err = runCLI(t, "-ledger", db, input)
	assert.ErrorIs(t, err, puzzle.ErrWrongAnswer)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runCLI(t)
	assert.ErrorContains(t, err, "missing input")

	_, _, err = runCLI(t, "a.txt", "b.txt")
	assert.Error(t, err)

	_, _, err = runCLI(t, filepath.Join(dir, "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("....\n"), 0o644))
	_, _, err = runCLI(t, bad)
	assert.ErrorIs(t, err, puzzle.ErrMissingPath)

	input := writeSample(t, dir)
	_, _, err = runCLI(t, "-trace", filepath.Join(dir, "t.zst"), "-trace-level", "tile", input)
	assert.ErrorIs(t, err, trace.ErrUnknownLevel)
}
