package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdscaffold/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show gdscaffold version information.

Displays:
  - gdscaffold version, commit, and build date
  - git and cargo versions found in PATH`,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.FullVersionString(version.GetInfo(), version.DetectToolchain()))
			return nil
		},
	}
}
