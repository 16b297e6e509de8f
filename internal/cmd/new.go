package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gdscaffold/cli/internal/cmdtypes"
	"github.com/gdscaffold/cli/internal/cmdutil"
	"github.com/gdscaffold/cli/internal/output"
	"github.com/gdscaffold/cli/internal/process"
	"github.com/gdscaffold/cli/internal/scaffold"
)

const (
	introTitle = "Scaffold Godot-Rust Project"
	outroText  = "Done! Enjoy your new project!"
)

// NewNewCmd creates the new command.
func NewNewCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.ScaffoldFlags

	c := &cobra.Command{
		Use:   "new",
		Short: "Create a Godot project and a Rust extension crate",
		Long: `Create a Godot project and a Rust GDExtension crate.

Asks for the project directory, the Godot and Rust directory names, the
project and crate names, and a set of optional features:

  git                    run git init in the project directory
  reloadable-extension   mark the extension reloadable
  vscode-launch-config   write .vscode/launch.json in the Rust tree
  vscode-extensions      write .vscode/extensions.json in the Rust tree

Examples:
  # Answer the questions interactively
  gdscaffold new

  # Answer from a file
  gdscaffold new --answers answers.yaml

  # Show what would be created
  gdscaffold new --answers answers.yaml --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runNew(c, g, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runNew(c *cobra.Command, g *cmdtypes.GlobalConfig, flags *cmdutil.ScaffoldFlags) error {
	prompter, err := cmdutil.NewPrompter(flags.Answers, os.Stdin)
	if err != nil {
		return cmdutil.Fail("cannot start session", err)
	}

	var fs afero.Fs = afero.NewOsFs()
	var runner process.Runner = process.NewExecRunner()
	if flags.DryRun {
		fs = afero.NewMemMapFs()
		runner = process.DryRunner{}
		output.Info("dry run: nothing is written to disk")
	}

	output.Info(output.FormatIntro(introTitle))

	res, err := scaffold.New(scaffold.Options{
		Fs:       fs,
		Prompter: prompter,
		Runner:   runner,
		Config:   g.UserConfig(),
	}).Run(c.Context())
	if err != nil {
		return cmdutil.Fail("scaffolding failed", err)
	}

	cmdutil.WriteSummary(c.OutOrStdout(), res)
	output.Info(output.FormatCheckmark(outroText))
	return nil
}
