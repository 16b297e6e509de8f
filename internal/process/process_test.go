package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/gdscaffold/cli/internal/errors"
)

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "git init", CommandLine("git", "init"))
	assert.Equal(t, "git", CommandLine("git"))
}

func TestExecRunner_SpawnFailure(t *testing.T) {
	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	err := r.Run(context.Background(), t.TempDir(), "gdscaffold-no-such-binary")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrProcess))
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "exit 3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrProcess))

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()
	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	require.NoError(t, r.Run(context.Background(), dir, "sh", "-c", "pwd -P"))
	resolved, err := exec.Command("sh", "-c", "cd "+dir+" && pwd -P").Output()
	require.NoError(t, err)
	assert.Equal(t, string(resolved), stdout.String())
}

func TestDryRunner(t *testing.T) {
	var r Runner = DryRunner{}
	assert.NoError(t, r.Run(context.Background(), "/does/not/exist", "git", "init"))
}
