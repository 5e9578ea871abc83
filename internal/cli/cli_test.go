package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsmtype/internal/app"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectCode     int
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Check with flags before the command",
			args: []string{"-mtype", "frame.Series,slice", "-mtype", "frame.Frame", "-log-level=DEBUG", "check", "in.yaml"},
			expectedConfig: &app.Config{
				Command:   app.CommandCheck,
				InputPath: "in.yaml",
				Mtypes:    []string{"frame.Series", "slice", "frame.Frame"},
				Window:    3,
				Metric:    "znorm",
				LogFormat: "text",
				LogLevel:  "debug",
			},
		},
		{
			name: "Flags interleaved with positionals",
			args: []string{"profile", "-window", "12", "in.yaml", "-metric=dtw", "-dump"},
			expectedConfig: &app.Config{
				Command:   app.CommandProfile,
				InputPath: "in.yaml",
				Window:    12,
				Metric:    "dtw",
				LogFormat: "text",
				LogLevel:  "info",
				Dump:      true,
			},
		},
		{
			name: "Infer without scitype",
			args: []string{"infer", "in.yaml"},
			expectedConfig: &app.Config{
				Command:   app.CommandInfer,
				InputPath: "in.yaml",
				Window:    3,
				Metric:    "znorm",
				LogFormat: "text",
				LogLevel:  "info",
			},
		},
		{
			name:       "No arguments prints usage",
			args:       nil,
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
			},
		},
		{
			name:       "Help flag",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "-mtype")
			},
		},
		{name: "Unknown flag", args: []string{"-bogus", "check", "in.yaml"}, expectCode: 2},
		{name: "Missing file", args: []string{"check"}, expectCode: 2},
		{name: "Too many arguments", args: []string{"check", "a", "b"}, expectCode: 2},
		{name: "Unknown command", args: []string{"convert", "in.yaml"}, expectCode: 2},
		{name: "Check without mtype or scitype", args: []string{"check", "in.yaml"}, expectCode: 2},
		{name: "Window too small", args: []string{"-window", "2", "profile", "in.yaml"}, expectCode: 2},
		{name: "Bad metric", args: []string{"-metric", "cosine", "profile", "in.yaml"}, expectCode: 2},
		{name: "Bad log format", args: []string{"-log-format", "xml", "infer", "in.yaml"}, expectCode: 2},
		{name: "Bad log level", args: []string{"-log-level", "trace", "infer", "in.yaml"}, expectCode: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer

			cfg, exit, err := Parse(tc.args, &out)

			if tc.expectCode != 0 {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %v", err)
				require.Equal(t, tc.expectCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, exit)
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestParse_ConfigFileDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tsmtype.yaml")
	err := os.WriteFile(path, []byte("scitype: Panel\nwindow: 8\nmetric: dtw\nlog_format: json\ndump: true\n"), 0600)
	require.NoError(t, err)

	cfg, exit, err := Parse([]string{"-config", path, "-window", "5", "check", "in.yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	want := &app.Config{
		Command:   app.CommandCheck,
		InputPath: "in.yaml",
		Scitype:   "Panel",
		Window:    5, // explicit flag wins
		Metric:    "dtw",
		LogFormat: "json",
		LogLevel:  "info",
		Dump:      true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ConfigFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("workers: 3\n"), 0600))

	for _, path := range []string{bad, filepath.Join(dir, "missing.yaml")} {
		_, _, err := Parse([]string{"-config", path, "infer", "in.yaml"}, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		require.Equal(t, 2, exitErr.Code)
	}
}
