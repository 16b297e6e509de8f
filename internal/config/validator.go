package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/gdscaffold/cli/internal/errors"
	"github.com/gdscaffold/cli/internal/paths"
	"github.com/gdscaffold/cli/internal/templates"
)

// Oldest Godot release the generated extension manifest is compatible with.
var minGodotVersion = semver.MustParse("4.1")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports ErrValidation so callers can map the exit code.
func (e *ValidationError) Is(target error) bool {
	return target == oerrors.ErrValidation
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Is reports ErrValidation so callers can map the exit code.
func (e ValidationErrors) Is(target error) bool {
	return target == oerrors.ErrValidation
}

// Validate checks every field of cfg and returns all problems at once.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.GodotVersion != "" {
		if _, err := NormalizeGodotVersion(cfg.GodotVersion); err != nil {
			errs = append(errs, ValidationError{Field: "godotVersion", Message: err.Error()})
		}
	}

	d := cfg.WithDefaults().Defaults
	if _, err := paths.Resolve(d.Root, d.EngineDir, d.ExtensionDir); err != nil {
		errs = append(errs, ValidationError{Field: "defaults", Message: messageOf(err)})
	}

	if d.LibraryName != "" {
		if err := templates.ValidateLibraryName(d.LibraryName); err != nil {
			errs = append(errs, ValidationError{Field: "defaults.libraryName", Message: err.Error()})
		}
	}

	if d.GodotExecutable != "" && strings.TrimSpace(d.GodotExecutable) == "" {
		errs = append(errs, ValidationError{
			Field:   "defaults.godotExecutable",
			Message: "must not be empty or whitespace only",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateFile validates a configuration file at the given path.
func ValidateFile(path string) error {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	return Validate(cfg)
}

// NormalizeGodotVersion reduces a Godot version such as "4.2.1" or "v4.3" to
// MAJOR.MINOR. Versions older than 4.1 are rejected.
func NormalizeGodotVersion(raw string) (string, error) {
	v, err := semver.NewVersion(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid Godot version %q: %w", raw, err)
	}
	if v.Major() != 4 || v.LessThan(minGodotVersion) {
		return "", fmt.Errorf("unsupported Godot version %q: need 4.x, at least %s", raw, minGodotVersion)
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor()), nil
}

// messageOf returns the bare message of a DetailError.
func messageOf(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}
