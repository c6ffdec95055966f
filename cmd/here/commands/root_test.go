package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/here/cmd/here/commands"
	"github.com/macropower/here/pkg/here"
)

const projectName = "here-cli-project"

// chdirProject creates <tmp>/here-cli-project/sub, changes into sub and
// returns the project root as reported by the working directory.
func chdirProject(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), projectName)
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o750))
	t.Chdir(sub)

	wd, err := os.Getwd()
	require.NoError(t, err)

	return filepath.ToSlash(filepath.Dir(wd))
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	tc := commands.NewRootCmd("test_here", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetOut(stdout)
	tc.SetErr(stderr)
	tc.SetIn(strings.NewReader(""))

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootCmdArgs(t *testing.T) {
	tcs := map[string]struct {
		wantErr   error
		logLevel  string
		logFormat string
	}{
		"default config": {
			logLevel:  "warn",
			logFormat: "text",
		},
		"json format": {
			logLevel:  "info",
			logFormat: "json",
		},
		"debug level": {
			logLevel:  "debug",
			logFormat: "logfmt",
		},
		"invalid log level": {
			logLevel:  "invalid",
			logFormat: "text",
			wantErr:   commands.ErrLogHandlerFailed,
		},
		"invalid log format": {
			logLevel:  "warn",
			logFormat: "invalid",
			wantErr:   commands.ErrLogHandlerFailed,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := execute(t,
				"--log_level", tc.logLevel,
				"--log_format", tc.logFormat,
				"version",
			)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Regexp(t, `\d+\.\d+\.\d+`, stdout)
			}
		})
	}
}

func TestRootCmdArgPointers(t *testing.T) {
	args := commands.NewRootArgs()

	assert.Empty(t, args.GetLogLevel())
	assert.Empty(t, args.GetLogFormat())
	assert.Empty(t, args.GetProjectDir())

	_, err := args.NewHere(nil)
	require.ErrorIs(t, err, commands.ErrInvalidArgument)
}

func TestRootPathCmd(t *testing.T) {
	want := chdirProject(t)

	stdout, stderr, err := execute(t, "--root", projectName, "root")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", stdout)
	assert.Empty(t, stderr)
}

func TestRootPathCmdFromEnv(t *testing.T) {
	want := chdirProject(t)
	t.Setenv(commands.EnvProjectDir, projectName)

	stdout, _, err := execute(t, "root")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", stdout)
}

func TestRootPathCmdNotFound(t *testing.T) {
	chdirProject(t)

	_, _, err := execute(t, "--root", "no-such-project", "root")
	require.ErrorIs(t, err, here.ErrRootNotFound)

	_, _, err = execute(t, "--root", "", "root")
	require.ErrorIs(t, err, commands.ErrInvalidArgument)
}
