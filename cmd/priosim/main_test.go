package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gthulhu/priosim/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "", "presets")
	require.NoError(t, err)
	assert.Equal(t, "default\nsample\n", out)

	out, err = execute(t, "", "presets", "default")
	require.NoError(t, err)
	assert.Equal(t, "id,arrival,burst,priority\n1,0,5,2\n2,1,3,1\n3,2,8,3\n4,3,6,2\n", out)

	_, err = execute(t, "", "presets", "nope")
	assert.ErrorIs(t, err, simulator.ErrUnknownPreset)
}

func TestSimulatePreset(t *testing.T) {
	out, err := execute(t, "", "simulate", "--preset", "default", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "| P1 | P2 | P1 | P4 | P3 |")
	assert.Contains(t, out, "Average Waiting Time: 5.00")

	_, err = execute(t, "", "simulate", "--preset", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: default, sample")
}

func TestSimulateFileAndStdin(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "procs.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("1,0,5,2\n2,1,3,1\n"), 0o600))

	out, err := execute(t, "", "simulate", csvPath, "-o", "json")
	require.NoError(t, err)
	var res simulator.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 8, res.TotalTime)

	jsonPath := filepath.Join(dir, "procs.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"processes":[{"id":1,"burstTime":2}]}`), 0o600))
	out, err = execute(t, "", "simulate", jsonPath, "--json-path", "processes", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.TotalTime)

	out, err = execute(t, `[{"id":5,"arrivalTime":1,"burstTime":1}]`, "simulate", "-", "--format", "json", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "| idle | P5 |")
}

func TestSimulateErrors(t *testing.T) {
	_, err := execute(t, "1,0,1,0\n1,2,1,0\n", "simulate")
	var dup *simulator.DuplicateIDError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, 1, dup.ID)

	_, err = execute(t, "", "simulate")
	assert.ErrorIs(t, err, simulator.ErrEmptyInput)

	_, err = execute(t, "", "simulate", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "", "simulate", "x.csv", "--preset", "default")
	assert.Error(t, err)
}

func TestSnapshotCommandRejectsLimit(t *testing.T) {
	_, err := execute(t, "", "snapshot", "--limit", "0")
	assert.Error(t, err)
}
