package cmdutil

import (
	"errors"
	"fmt"
	"io"

	oerrors "github.com/gdscaffold/cli/internal/errors"
	"github.com/gdscaffold/cli/internal/output"
	"github.com/gdscaffold/cli/internal/scaffold"
)

// PrintError prints err in a user-friendly format. A DetailError is printed
// with its location and hint on separate lines; other errors fall back to the
// key-value log format.
func PrintError(msg string, err error) {
	var kv []any
	var stateErr *scaffold.StateError
	if errors.As(err, &stateErr) {
		kv = append(kv, "state", stateErr.State)
	}

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(msg, kv...)
		output.Details(detail.Error())
		return
	}
	output.Error(msg, append(kv, "error", err)...)
}

// Fail prints err and returns it as an already printed ExitError.
func Fail(msg string, err error) error {
	PrintError(msg, err)
	exitErr := oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	exitErr.Printed = true
	return exitErr
}

// WriteSummary writes one file tree per generated tree followed by a count.
func WriteSummary(w io.Writer, res *scaffold.Result) {
	if res == nil || res.Paths == nil {
		return
	}

	engine, extension := res.Summary()
	if tree := output.RenderFileTree(res.Paths.EnginePath, engine); tree != "" {
		fmt.Fprintln(w, tree)
	}
	if tree := output.RenderFileTree(res.Paths.ExtensionPath, extension); tree != "" {
		fmt.Fprintln(w, tree)
	}
	fmt.Fprintln(w, output.StyleSummary.Render(fmt.Sprintf("%d files written", res.FileCount())))
}
