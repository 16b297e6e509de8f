package prompt

import (
	"errors"
	"io"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"

	oerrors "github.com/gdscaffold/cli/internal/errors"
)

func TestPromptError(t *testing.T) {
	interrupted := promptError(KeyProjectName, terminal.InterruptErr)
	assert.True(t, errors.Is(interrupted, oerrors.ErrPrompt))
	assert.Contains(t, interrupted.Error(), "aborted")

	eof := promptError(KeyRoot, io.EOF)
	assert.True(t, errors.Is(eof, oerrors.ErrPrompt))
	assert.True(t, errors.Is(eof, io.EOF))
	assert.Contains(t, eof.Error(), KeyRoot)
}

func TestNewTerminal(t *testing.T) {
	var p Prompter = NewTerminal()
	assert.NotNil(t, p)
}
