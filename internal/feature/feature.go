// Package feature plans and applies the optional quality-of-life features
// that run after the base trees are written.
package feature

import (
	"fmt"
	"slices"
	"strings"

	oerrors "github.com/gdscaffold/cli/internal/errors"
	"github.com/gdscaffold/cli/internal/prompt"
)

// Feature is an optional, independently selectable post-processing feature.
type Feature string

// The fixed feature enumeration, in execution order.
const (
	Git                 Feature = "git"
	ReloadableExtension Feature = "reloadable-extension"
	VscodeLaunchConfig  Feature = "vscode-launch-config"
	VscodeExtensions    Feature = "vscode-extensions"
)

// All returns every feature in execution order.
func All() []Feature {
	return []Feature{Git, ReloadableExtension, VscodeLaunchConfig, VscodeExtensions}
}

// Names returns the names of every feature in execution order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, f := range all {
		names[i] = string(f)
	}
	return names
}

// Parse converts a feature name.
func Parse(name string) (Feature, error) {
	f := Feature(name)
	if !slices.Contains(All(), f) {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown feature %q", name),
			"", prompt.KeyFeatures, fmt.Sprintf("Valid features: %s", strings.Join(Names(), ", ")))
	}
	return f, nil
}

// Label is the text shown in the selection prompt.
func (f Feature) Label() string {
	switch f {
	case Git:
		return "Git"
	case ReloadableExtension:
		return "Reloadable Extension"
	case VscodeLaunchConfig:
		return "VSCode Launch Config"
	case VscodeExtensions:
		return "VSCode Extensions"
	default:
		return string(f)
	}
}

// Description is the hint shown next to the label.
func (f Feature) Description() string {
	switch f {
	case ReloadableExtension:
		return "make the GDExtension reloadable"
	case VscodeLaunchConfig:
		return "create .vscode/launch.json"
	case VscodeExtensions:
		return "create .vscode/extensions.json with recommended extensions"
	default:
		return ""
	}
}

// Options returns the selection prompt options for every feature.
func Options() []prompt.Option {
	all := All()
	opts := make([]prompt.Option, len(all))
	for i, f := range all {
		opts[i] = prompt.Option{Value: string(f), Label: f.Label(), Description: f.Description()}
	}
	return opts
}

// Set is an unordered set of selected features.
type Set map[Feature]struct{}

// NewSet builds a Set from features.
func NewSet(features ...Feature) Set {
	s := make(Set, len(features))
	for _, f := range features {
		s[f] = struct{}{}
	}
	return s
}

// ParseSet builds a Set from feature names.
func ParseSet(names []string) (Set, error) {
	s := make(Set, len(names))
	for _, n := range names {
		f, err := Parse(n)
		if err != nil {
			return nil, err
		}
		s[f] = struct{}{}
	}
	return s, nil
}

// Has reports whether f is selected.
func (s Set) Has(f Feature) bool {
	_, ok := s[f]
	return ok
}

// Sorted returns the selected features in execution order.
func (s Set) Sorted() []Feature {
	var out []Feature
	for _, f := range All() {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}
