package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gdscaffold/cli/internal/cmdtypes"
	"github.com/gdscaffold/cli/internal/config"
	oerrors "github.com/gdscaffold/cli/internal/errors"
	"github.com/gdscaffold/cli/internal/feature"
)

const configHeader = "# gdscaffold configuration\n# Values here are offered as defaults by `gdscaffold new`.\n\n"

func newInitCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new gdscaffold configuration file",
		Long: `Create a new gdscaffold configuration file with default values.

The configuration file is created at ~/.gdscaffold/config.yaml by default.
Use --config flag to specify a different location.

Examples:
  # Initialize configuration
  gdscaffold config init

  # Overwrite existing configuration
  gdscaffold config init --force`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, g, force)
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return initCmd
}

func runInit(c *cobra.Command, g *cmdtypes.GlobalConfig, force bool) error {
	configFile, err := configPath(g)
	if err != nil {
		return fmt.Errorf("getting config file path: %w", err)
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !force {
		return oerrors.NewValidationError(
			"configuration already exists", expandedPath, "",
			"Use --force to overwrite existing configuration.")
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return oerrors.NewFilesystemError("creating config directory", filepath.Dir(expandedPath), err)
	}

	cfg := config.DefaultConfig()
	cfg.Defaults.GodotExecutable = feature.DefaultGodotExecutable(runtime.GOOS)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return oerrors.NewFilesystemError("writing config file", expandedPath, err)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", expandedPath)
	return nil
}
