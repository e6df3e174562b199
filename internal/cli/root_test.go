package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	clitest "github.com/leapstack-labs/contentlint/internal/cli/testutil"
	"github.com/leapstack-labs/contentlint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	code := Run(args, out, errOut)
	return code, out.String(), errOut.String()
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"version", "lessons", "courses", "check", "graph", "rules", "completion"} {
		assert.Contains(t, names, want)
	}
}

func TestRun_Version(t *testing.T) {
	code, out, _ := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "contentlint v"+Version)

	code, out, _ = run(t, "--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "contentlint "+Version+"\n", out)
}

func TestRun_CheckPasses(t *testing.T) {
	t.Chdir(clitest.SetupContentProject(t))

	code, out, errOut := run(t, "check")
	assert.Equal(t, 0, code, errOut)
	assert.Equal(t, "0 Error(s)\n0 Warning(s)\n✓ Validation passed\n", out)
	clitest.AssertNoANSI(t, out)
}

func TestRun_CheckFails(t *testing.T) {
	root := clitest.SetupContentProject(t)
	testutil.WriteJSON(t, filepath.Join(root, "content", "lessons", "copy.json"), testutil.Lesson("optionals"))
	t.Chdir(root)

	code, out, errOut := run(t, "check")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "[ID01]")
	assert.Contains(t, out, "✗ Validation failed")
	assert.NotContains(t, errOut, "Error:", "validation failures are reported on stdout only")
}

func TestRun_CheckJSON(t *testing.T) {
	t.Chdir(clitest.SetupContentProject(t))

	code, out, _ := run(t, "check", "-o", "json")
	require.Equal(t, 0, code)

	var got struct {
		Summary struct {
			Errors int  `json:"errors"`
			Passed bool `json:"passed"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Summary.Passed)
	assert.Zero(t, got.Summary.Errors)
}

func TestRun_DirectoryFlags(t *testing.T) {
	root := clitest.SetupContentProject(t)
	t.Chdir(t.TempDir())

	code, out, errOut := run(t, "lessons", "--lessons-dir", filepath.Join(root, "content", "lessons"))
	assert.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "✓ Validation passed")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown command", []string{"publish"}, "unknown command"},
		{"unknown output format", []string{"check", "-o", "yaml"}, "unknown output format"},
		{"missing config file", []string{"check", "--config", "does-not-exist.yaml"}, "does-not-exist.yaml"},
		{"unexpected argument", []string{"lessons", "extra"}, "extra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(clitest.SetupContentProject(t))

			code, _, errOut := run(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, "Error:")
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestExitCode(t *testing.T) {
	var errOut bytes.Buffer
	assert.Equal(t, 0, ExitCode(&errOut, nil))
	assert.Equal(t, 1, ExitCode(&errOut, ErrValidationFailed))
	assert.Empty(t, errOut.String())
}

func TestCompletion(t *testing.T) {
	code, out, _ := run(t, "completion", "bash")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "contentlint")
}
