package prompt

import (
	"fmt"
	"slices"
	"strings"

	oerrors "github.com/gdscaffold/cli/internal/errors"
)

// Scripted answers questions from a fixed set of answers. Questions without
// an answer fall back to their default.
type Scripted struct {
	text    map[string]string
	choices map[string][]string
	asked   []string
}

// NewScripted creates a Scripted prompter. text holds free text answers,
// choices holds multi-select answers, both keyed by question key.
func NewScripted(text map[string]string, choices map[string][]string) *Scripted {
	if text == nil {
		text = map[string]string{}
	}
	if choices == nil {
		choices = map[string][]string{}
	}
	return &Scripted{text: text, choices: choices}
}

// Text implements Prompter.
func (s *Scripted) Text(q Question) (string, error) {
	s.asked = append(s.asked, q.Key)

	if answer, ok := s.text[q.Key]; ok && strings.TrimSpace(answer) != "" {
		return answer, nil
	}
	if q.Default != "" {
		return q.Default, nil
	}
	if q.Required {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("no answer for required question %q", q.Label),
			"", q.Key, fmt.Sprintf("Add %q to the answers file.", q.Key))
	}
	return "", nil
}

// MultiSelect implements Prompter. Unknown values are rejected.
func (s *Scripted) MultiSelect(c Choice) ([]string, error) {
	s.asked = append(s.asked, c.Key)

	answers := s.choices[c.Key]
	values := make([]string, 0, len(answers))
	for _, a := range answers {
		known := slices.ContainsFunc(c.Options, func(o Option) bool { return o.Value == a })
		if !known {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("unknown option %q", a),
				"", c.Key, fmt.Sprintf("Valid options: %s", strings.Join(optionValues(c.Options), ", ")))
		}
		values = append(values, a)
	}
	return values, nil
}

// Asked returns the keys of every question asked so far, in order.
func (s *Scripted) Asked() []string {
	return slices.Clone(s.asked)
}

func optionValues(opts []Option) []string {
	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	return values
}
