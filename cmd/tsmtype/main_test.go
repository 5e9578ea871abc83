package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsmtype/internal/app"
	"github.com/katalvlaran/tsmtype/internal/cli"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_UsageError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"check"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_Check(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "kind: slice\nvalues: [1, 2, 3]\n")
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-mtype", "slice", "check", path})

	require.NoError(t, err)
	require.Contains(t, out.String(), "mtype: slice")
}

func TestRun_NotConforming(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "kind: slice\nvalues: [[1, 2], [3]]\n")

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-mtype", "slice", "check", path})

	require.ErrorIs(t, err, app.ErrNotConforming)
}
