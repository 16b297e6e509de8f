// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/gdscaffold/cli/internal/cmdtypes"
	"github.com/gdscaffold/cli/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Manage the gdscaffold defaults file.`,
	}

	c.AddCommand(newInitCmd(g))
	c.AddCommand(newVetCmd(g))

	return c
}

// configPath returns the config file path for g.
func configPath(g *cmdtypes.GlobalConfig) (string, error) {
	if g.ConfigPath != "" {
		return g.ConfigPath, nil
	}
	return config.GetConfigFile()
}
