// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/gdscaffold/cli/internal/cmd/config"
	"github.com/gdscaffold/cli/internal/cmdtypes"
	"github.com/gdscaffold/cli/internal/config"
	"github.com/gdscaffold/cli/internal/output"
	"github.com/gdscaffold/cli/internal/version"
)

// NewRootCmd creates the root command for the gdscaffold CLI.
func NewRootCmd() *cobra.Command {
	g := &cmdtypes.GlobalConfig{}
	var timestamps bool

	rootCmd := &cobra.Command{
		Use:   "gdscaffold",
		Short: "Scaffold Godot projects with a Rust GDExtension",
		Long: `gdscaffold creates a Godot 4 project and a godot-rust (gdext) extension
crate side by side, with the extension manifest already pointing at the
crate's build output.

It provides commands to:
  - Create a new project interactively or from an answers file
  - Manage the defaults offered by the questions`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			var flagTimestamps *bool
			if c.Flags().Changed("timestamps") {
				flagTimestamps = output.BoolPtr(timestamps)
			}
			return initializeGlobals(g, flagTimestamps)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&g.ConfigFlag, "config", "c", "", "path to config file (env: GDSCAFFOLD_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "increase output verbosity")
	rootCmd.PersistentFlags().BoolVar(&timestamps, "timestamps", true, "show timestamps in log output")

	rootCmd.AddCommand(NewNewCmd(g))
	rootCmd.AddCommand(configcmd.NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(g *cmdtypes.GlobalConfig, flagTimestamps *bool) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: g.ConfigFlag})
	if err != nil {
		return err
	}
	g.ConfigPath = pathResult.ConfigPath

	// A broken config file must not block `config init --force`
	cfg, loadErr := config.NewLoader().LoadWithDefaults(g.ConfigPath)
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}
	g.Config = cfg

	ts := config.ResolveTimestamps(flagTimestamps, cfg)
	output.SetupLogging(output.LogConfig{
		Verbose:    g.Verbose,
		Timestamps: output.BoolPtr(ts.Value.(bool)),
	})

	if loadErr != nil {
		output.Warn("ignoring config file", "path", g.ConfigPath, "error", loadErr)
	}

	info := version.GetInfo()
	output.Debug("gdscaffold started", "version", info.Version)

	shadowed := make(map[config.ConfigSource]any, len(pathResult.Shadowed))
	for k, v := range pathResult.Shadowed {
		shadowed[k] = v
	}
	config.LogResolvedValues([]config.ResolvedValue{
		{Key: "config", Value: pathResult.ConfigPath, Source: pathResult.Source, Shadowed: shadowed},
		ts,
		{Key: "godotVersion", Value: cfg.GodotVersion, Source: config.SourceConfig},
	})

	return nil
}
