package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()
	assert.Equal(t, config.TraceInstruction, cfg.Trace.Level)
	assert.Zero(t, cfg.FaceSize)
	assert.Nil(t, cfg.Expected.Flat)
}

func TestParse_Full(t *testing.T) {
	cfg, err := config.Parse([]byte(`
input: sample.txt
face_size: 4
verbose: true
expected:
  flat: 6032
  cube: 5031
trace:
  path: out/trace.jsonl.zst
  level: step
ledger:
  path: answers.db
`))
	require.NoError(t, err)
	assert.Equal(t, "sample.txt", cfg.Input)
	assert.Equal(t, 4, cfg.FaceSize)
	assert.True(t, cfg.Verbose)
	require.NotNil(t, cfg.Expected.Flat)
	require.NotNil(t, cfg.Expected.Cube)
	assert.Equal(t, 6032, *cfg.Expected.Flat)
	assert.Equal(t, 5031, *cfg.Expected.Cube)
	assert.Equal(t, config.TraceStep, cfg.Trace.Level)
	assert.Equal(t, "answers.db", cfg.Ledger.Path)
}

func TestParse_EmptyIsDefaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)

	cfg, err = config.Parse([]byte("trace:\n  path: t.zst\n"))
	require.NoError(t, err)
	assert.Equal(t, config.TraceInstruction, cfg.Trace.Level)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative face size": "face_size: -1\n",
		"unknown key":        "inptu: x\n",
		"bad trace level":    "trace:\n  level: tile\n",
		"wrong type":         "verbose: [1]\n",
		"negative answer":    "expected:\n  cube: -5\n",
		"not yaml":           "input: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere", "ledger.db")
	path := filepath.Join(dir, "cubewalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: in.txt\ntrace:\n  path: t.jsonl.zst\nledger:\n  path: "+abs+"\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "in.txt"), cfg.Input)
	assert.Equal(t, filepath.Join(dir, "t.jsonl.zst"), cfg.Trace.Path)
	assert.Equal(t, abs, cfg.Ledger.Path)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("face_size: -2\n"), 0o644))
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
