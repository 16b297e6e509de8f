package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	oerrors "github.com/gdscaffold/cli/internal/errors"
)

// Environment variable prefix for gdscaffold configuration.
const envPrefix = "GDSCAFFOLD"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	// GDSCAFFOLD_DEFAULTS_ENGINEDIR style names for every key
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names for the common keys
	_ = v.BindEnv("defaults.root", "GDSCAFFOLD_ROOT")
	_ = v.BindEnv("defaults.engineDir", "GDSCAFFOLD_ENGINE_DIR")
	_ = v.BindEnv("defaults.extensionDir", "GDSCAFFOLD_EXTENSION_DIR")
	_ = v.BindEnv("defaults.libraryName", "GDSCAFFOLD_LIBRARY_NAME")
	_ = v.BindEnv("defaults.godotExecutable", "GDSCAFFOLD_GODOT_EXECUTABLE")
	_ = v.BindEnv("godotVersion", "GDSCAFFOLD_GODOT_VERSION")
	_ = v.BindEnv("log.timestamps", "GDSCAFFOLD_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	// A missing file means defaults plus env vars
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("reading config file: %v", err),
				expandedPath, "", "Run 'gdscaffold config init --force' to regenerate it.")
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("unmarshaling config: %v", err), expandedPath, "", "")
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
