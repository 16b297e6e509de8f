// Package config provides configuration loading and management.
package config

// DefaultGodotVersion is the Godot version written into project.godot.
const DefaultGodotVersion = "4.2"

// DefaultsConfig holds the values offered as prompt defaults.
type DefaultsConfig struct {
	// Root is the project directory.
	// Env: GDSCAFFOLD_ROOT, Default: "."
	Root string `mapstructure:"root" yaml:"root"`

	// EngineDir is the Godot tree directory, relative to Root.
	// Env: GDSCAFFOLD_ENGINE_DIR, Default: "godot"
	EngineDir string `mapstructure:"engineDir" yaml:"engineDir"`

	// ExtensionDir is the Rust tree directory, relative to Root.
	// Env: GDSCAFFOLD_EXTENSION_DIR, Default: "rust"
	ExtensionDir string `mapstructure:"extensionDir" yaml:"extensionDir"`

	// LibraryName overrides the crate name derived from the project name.
	// Env: GDSCAFFOLD_LIBRARY_NAME
	LibraryName string `mapstructure:"libraryName" yaml:"libraryName,omitempty"`

	// GodotExecutable is offered for the launch configuration.
	// Env: GDSCAFFOLD_GODOT_EXECUTABLE, Default: the usual install location for the OS
	GodotExecutable string `mapstructure:"godotExecutable" yaml:"godotExecutable,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the gdscaffold configuration.
// Loaded from ~/.gdscaffold/config.yaml.
type Config struct {
	// Defaults are offered as answers to the interactive questions.
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`

	// GodotVersion is the MAJOR.MINOR Godot version of new projects.
	// Env: GDSCAFFOLD_GODOT_VERSION, Default: "4.2"
	GodotVersion string `mapstructure:"godotVersion" yaml:"godotVersion"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `gdscaffold config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Root:         ".",
			EngineDir:    "godot",
			ExtensionDir: "rust",
		},
		GodotVersion: DefaultGodotVersion,
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	d := DefaultConfig()
	out := *c
	if out.Defaults.Root == "" {
		out.Defaults.Root = d.Defaults.Root
	}
	if out.Defaults.EngineDir == "" {
		out.Defaults.EngineDir = d.Defaults.EngineDir
	}
	if out.Defaults.ExtensionDir == "" {
		out.Defaults.ExtensionDir = d.Defaults.ExtensionDir
	}
	if out.GodotVersion == "" {
		out.GodotVersion = d.GodotVersion
	}
	return &out
}
