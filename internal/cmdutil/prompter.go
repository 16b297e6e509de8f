package cmdutil

import (
	"os"

	"github.com/gdscaffold/cli/internal/config"
	oerrors "github.com/gdscaffold/cli/internal/errors"
	"github.com/gdscaffold/cli/internal/output"
	"github.com/gdscaffold/cli/internal/prompt"
)

// NewPrompter returns a scripted prompter for answersPath, or a terminal
// prompter when no answers file is given. A terminal prompter needs stdin to
// be a terminal.
func NewPrompter(answersPath string, stdin *os.File) (prompt.Prompter, error) {
	if answersPath != "" {
		answers, err := config.LoadAnswers(answersPath)
		if err != nil {
			return nil, err
		}
		output.Debug("using answers file", "path", answersPath)
		return answers.Prompter(), nil
	}

	if !output.IsInteractive(stdin) {
		return nil, oerrors.NewValidationError(
			"stdin is not a terminal", "", "",
			"Pass --answers <file.yaml> for non-interactive runs.")
	}
	return prompt.NewTerminal(), nil
}
