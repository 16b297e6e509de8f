package scaffold

import (
	"fmt"
	"strings"

	"github.com/gdscaffold/cli/internal/config"
	oerrors "github.com/gdscaffold/cli/internal/errors"
	"github.com/gdscaffold/cli/internal/feature"
	"github.com/gdscaffold/cli/internal/output"
	"github.com/gdscaffold/cli/internal/prompt"
	"github.com/gdscaffold/cli/internal/templates"
)

// ProjectConfig is the answer set of one session. It is not modified after
// collection.
type ProjectConfig struct {
	// Root is the project directory.
	Root string

	// EngineDir is the Godot tree directory relative to Root.
	EngineDir string

	// ProjectName is the Godot display name.
	ProjectName string

	// ExtensionDir is the Rust tree directory relative to Root.
	ExtensionDir string

	// LibraryName is the Cargo package name.
	LibraryName string

	// Features are the selected optional features.
	Features feature.Set
}

// Prompt labels.
const (
	labelRoot         = "Project Directory (leave empty for current folder): "
	labelEngineDir    = "Godot Directory Name: "
	labelProjectName  = "Project Name: "
	labelExtensionDir = "Rust Directory Name: "
	labelLibraryName  = "Rust Project Name: "
	labelFeatures     = "QOL Features (arrows to move, space to select, enter to submit)"
)

// collectConfig asks every base question in session order.
func collectConfig(p prompt.Prompter, defaults config.DefaultsConfig) (*ProjectConfig, error) {
	var cfg ProjectConfig
	var err error

	if cfg.Root, err = p.Text(prompt.Question{Key: prompt.KeyRoot, Label: labelRoot, Default: defaults.Root}); err != nil {
		return nil, err
	}

	output.Info(output.FormatSection("Godot"))

	if cfg.EngineDir, err = p.Text(prompt.Question{Key: prompt.KeyEngineDir, Label: labelEngineDir, Default: defaults.EngineDir}); err != nil {
		return nil, err
	}
	if cfg.ProjectName, err = p.Text(prompt.Question{Key: prompt.KeyProjectName, Label: labelProjectName, Required: true}); err != nil {
		return nil, err
	}
	if err := templates.ValidateProjectName(cfg.ProjectName); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "", prompt.KeyProjectName, "")
	}

	output.Info(output.FormatSection("Rust"))

	if cfg.ExtensionDir, err = p.Text(prompt.Question{Key: prompt.KeyExtensionDir, Label: labelExtensionDir, Default: defaults.ExtensionDir}); err != nil {
		return nil, err
	}

	libDefault := defaults.LibraryName
	if libDefault == "" {
		libDefault = templates.DeriveLibraryName(cfg.ProjectName)
	}
	if cfg.LibraryName, err = p.Text(prompt.Question{Key: prompt.KeyLibraryName, Label: labelLibraryName, Default: libDefault}); err != nil {
		return nil, err
	}
	cfg.LibraryName = strings.TrimSpace(cfg.LibraryName)
	if err := templates.ValidateLibraryName(cfg.LibraryName); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "", prompt.KeyLibraryName,
			fmt.Sprintf("Try %q.", templates.DeriveLibraryName(cfg.LibraryName)))
	}

	selected, err := p.MultiSelect(prompt.Choice{Key: prompt.KeyFeatures, Label: labelFeatures, Options: feature.Options()})
	if err != nil {
		return nil, err
	}
	if cfg.Features, err = feature.ParseSet(selected); err != nil {
		return nil, err
	}

	return &cfg, nil
}
