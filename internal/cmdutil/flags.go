// Package cmdutil provides shared command utilities: flag groups, prompter
// selection and result/error rendering.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// ScaffoldFlags holds the flags of commands that run a scaffolding session.
type ScaffoldFlags struct {
	// Answers is an answers file replacing the interactive prompts.
	Answers string

	// DryRun renders into memory and runs no commands.
	DryRun bool
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Answers, "answers", "a", "",
		"YAML answers file for a non-interactive run")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Render without writing files or running commands")
}
