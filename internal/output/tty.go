package output

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether f is a terminal that can answer prompts.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
