// Package process runs external commands.
package process

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	oerrors "github.com/gdscaffold/cli/internal/errors"
	"github.com/gdscaffold/cli/internal/output"
)

// Runner runs a command in dir and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands as child processes. Output goes to Stdout and
// Stderr, which default to the parent's.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner that inherits the process stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner. A spawn failure or non-zero exit is returned as a
// process error.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	line := CommandLine(name, args...)
	output.Debug("running command", "cmd", line, "dir", dir)

	if err := cmd.Run(); err != nil {
		return oerrors.NewProcessError(line, dir, err)
	}
	return nil
}

// CommandLine joins a command and its arguments for display.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// DryRunner logs commands instead of running them.
type DryRunner struct{}

// Run implements Runner.
func (DryRunner) Run(_ context.Context, dir, name string, args ...string) error {
	output.Info("would run", "cmd", CommandLine(name, args...), "dir", dir)
	return nil
}
