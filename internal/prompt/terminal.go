package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	oerrors "github.com/gdscaffold/cli/internal/errors"
)

// Terminal asks questions on an interactive terminal.
type Terminal struct {
	in  terminal.FileReader
	out terminal.FileWriter
	err io.Writer
}

// NewTerminal returns a Terminal bound to the process stdio.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// Text implements Prompter.
func (t *Terminal) Text(q Question) (string, error) {
	input := &survey.Input{
		Message: q.Label,
		Default: q.Default,
	}

	opts := []survey.AskOpt{survey.WithStdio(t.in, t.out, t.err)}
	if q.Required && q.Default == "" {
		opts = append(opts, survey.WithValidator(survey.Required))
	}

	var answer string
	if err := survey.AskOne(input, &answer, opts...); err != nil {
		return "", promptError(q.Key, err)
	}
	return answer, nil
}

// MultiSelect implements Prompter.
func (t *Terminal) MultiSelect(c Choice) ([]string, error) {
	labels := make([]string, len(c.Options))
	byLabel := make(map[string]string, len(c.Options))
	for i, o := range c.Options {
		labels[i] = o.Label
		byLabel[o.Label] = o.Value
	}

	sel := &survey.MultiSelect{
		Message: c.Label,
		Options: labels,
		Description: func(_ string, index int) string {
			return c.Options[index].Description
		},
	}

	var picked []string
	if err := survey.AskOne(sel, &picked, survey.WithStdio(t.in, t.out, t.err)); err != nil {
		return nil, promptError(c.Key, err)
	}

	values := make([]string, 0, len(picked))
	for _, label := range picked {
		values = append(values, byLabel[label])
	}
	return values, nil
}

func promptError(key string, err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return oerrors.Wrap(oerrors.ErrPrompt, key+": session aborted")
	}
	return fmt.Errorf("%s: %w: %w", key, oerrors.ErrPrompt, err)
}
