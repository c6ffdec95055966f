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
	"github.com/macropower/here/pkg/bump"
)

func writeVersionFile(t *testing.T, root, name, version string) string {
	t.Helper()

	path := filepath.FromSlash(root + "/" + name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("[project]\nname = \"x\"\nversion = \""+version+"\"\n"), 0o600))

	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestBumpCmdYes(t *testing.T) {
	root := chdirProject(t)
	path := writeVersionFile(t, root, "pyproject.toml", "00.00.01")

	stdout, _, err := execute(t, "-r", projectName, "bump", "3", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "Incrementing version from 00.00.01 to 00.00.02.\n", stdout)
	assert.Contains(t, readFile(t, path), `version = "00.00.02"`)
}

func TestBumpCmdOtherFile(t *testing.T) {
	root := chdirProject(t)
	path := writeVersionFile(t, root, "config/version.toml", "1.2.3")

	_, _, err := execute(t, "-r", projectName, "bump", "minor", "-f", "config/version.toml", "-y")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, path), `version = "1.3.0"`)
}

func TestBumpCmdPrompt(t *testing.T) {
	tcs := map[string]struct {
		wantErr error
		input   string
		want    string
	}{
		"accepted": {
			input: "y\n",
			want:  "00.01.00",
		},
		"accepted without newline": {
			input: "yes",
			want:  "00.01.00",
		},
		"declined": {
			input:   "n\n",
			want:    "00.00.05",
			wantErr: commands.ErrCanceled,
		},
		"empty": {
			input:   "",
			want:    "00.00.05",
			wantErr: commands.ErrCanceled,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			root := chdirProject(t)
			path := writeVersionFile(t, root, "pyproject.toml", "00.00.05")

			cmd := commands.NewRootCmd("test_bump", "", "")
			stdout := &bytes.Buffer{}
			cmd.SetArgs([]string{"-r", projectName, "bump", "2"})
			cmd.SetOut(stdout)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetIn(strings.NewReader(tc.input))

			err := cmd.Execute()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Contains(t, stdout.String(), "Continue? [y/n]: ")
			assert.Contains(t, readFile(t, path), `version = "`+tc.want+`"`)
		})
	}
}

func TestBumpCmdErrors(t *testing.T) {
	root := chdirProject(t)
	writeVersionFile(t, root, "pyproject.toml", "1.2.3")

	_, _, err := execute(t, "-r", projectName, "bump", "4", "-y")
	require.ErrorIs(t, err, commands.ErrInvalidArgument)
	require.ErrorIs(t, err, bump.ErrInvalidPart)

	_, _, err = execute(t, "-r", projectName, "bump", "1", "-y", "-f", "missing.toml")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "-r", projectName, "bump", "-y")
	require.Error(t, err)
}
