package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdscaffold/cli/internal/cmdtypes"
	"github.com/gdscaffold/cli/internal/config"
	oerrors "github.com/gdscaffold/cli/internal/errors"
)

func newVetCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the gdscaffold configuration file",
		Long: `Validate the gdscaffold configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. godotVersion is a supported Godot 4 release
  4. Default directories are relative and do not overlap
  5. Default library name is a valid crate name

The config path is resolved using precedence:
  --config flag > GDSCAFFOLD_CONFIG env > ~/.gdscaffold/config.yaml`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, g)
		},
	}
}

func runVet(c *cobra.Command, g *cmdtypes.GlobalConfig) error {
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

	if !exists {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: expandedPath,
			Hint:     "Run 'gdscaffold config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	if err := config.ValidateFile(expandedPath); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", expandedPath)
			for _, e := range validationErrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			exitErr := oerrors.NewExitError(err, oerrors.ExitValidationError)
			exitErr.Printed = true
			return exitErr
		}
		return err
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file is valid: %s\n", expandedPath)
	return nil
}
