// Package paths normalizes user supplied directory names and computes the
// relative layout between the engine tree and the extension tree.
package paths

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/gdscaffold/cli/internal/errors"
)

// CurrentDir is the normalized form of an empty or all-"." path.
const CurrentDir = "."

// ResolvedPaths is the directory topology derived from a project configuration.
type ResolvedPaths struct {
	// Root is the normalized project root.
	Root string

	// EngineDir is the normalized engine tree directory, relative to Root.
	EngineDir string

	// ExtensionDir is the normalized extension tree directory, relative to Root.
	ExtensionDir string

	// EnginePath is Root joined with EngineDir.
	EnginePath string

	// ExtensionPath is Root joined with ExtensionDir.
	ExtensionPath string

	// Depth is the number of segments to walk up from the engine tree to Root.
	Depth int

	// ExtensionDepth is the number of segments to walk up from the extension tree to Root.
	ExtensionDepth int
}

// Normalize lexically cleans a path: repeated separators are collapsed and
// "." and ".." elements are resolved. The filesystem is never consulted.
// An empty input normalizes to CurrentDir.
func Normalize(raw string) string {
	return filepath.Clean(raw)
}

// Depth returns the number of segments in a normalized root-relative
// directory. The current directory has depth 0.
func Depth(dir string) int {
	clean := Normalize(dir)
	if clean == CurrentDir {
		return 0
	}
	return len(strings.Split(filepath.ToSlash(clean), "/"))
}

// Resolve joins the engine and extension directory names onto root and
// computes the relative depth of each tree.
func Resolve(root, engineDir, extensionDir string) (*ResolvedPaths, error) {
	root = Normalize(root)
	engineDir = Normalize(engineDir)
	extensionDir = Normalize(extensionDir)

	if err := checkRelative("engine directory", engineDir); err != nil {
		return nil, err
	}
	if err := checkRelative("extension directory", extensionDir); err != nil {
		return nil, err
	}
	if err := checkOverlap(engineDir, extensionDir); err != nil {
		return nil, err
	}

	return &ResolvedPaths{
		Root:           root,
		EngineDir:      engineDir,
		ExtensionDir:   extensionDir,
		EnginePath:     Normalize(filepath.Join(root, engineDir)),
		ExtensionPath:  Normalize(filepath.Join(root, extensionDir)),
		Depth:          Depth(engineDir),
		ExtensionDepth: Depth(extensionDir),
	}, nil
}

// ExtensionFromEngine returns the slash separated path from the engine tree
// to the extension tree.
func (r *ResolvedPaths) ExtensionFromEngine() string {
	return relative(r.Depth, r.ExtensionDir)
}

// EngineFromExtension returns the slash separated path from the extension
// tree to the engine tree.
func (r *ResolvedPaths) EngineFromExtension() string {
	return relative(r.ExtensionDepth, r.EngineDir)
}

func relative(depth int, target string) string {
	return path.Join(strings.Repeat("../", depth), filepath.ToSlash(target))
}

// checkRelative rejects directory names that are absolute or escape the root.
func checkRelative(field, dir string) error {
	if filepath.IsAbs(dir) {
		return oerrors.NewValidationError(
			fmt.Sprintf("%s %q must be relative to the project directory", field, dir),
			dir, field, "Use a directory name such as \"godot\" or \"rust\".")
	}
	if dir == ".." || strings.HasPrefix(filepath.ToSlash(dir), "../") {
		return oerrors.NewValidationError(
			fmt.Sprintf("%s %q is outside the project directory", field, dir),
			dir, field, "Remove leading \"..\" elements from the directory name.")
	}
	return nil
}

// checkOverlap enforces that the two trees are distinct and disjoint. The
// engine tree may sit at the root itself.
func checkOverlap(engineDir, extensionDir string) error {
	if extensionDir == CurrentDir {
		return oerrors.NewValidationError(
			"extension directory cannot be the project directory itself",
			extensionDir, "extension directory", "Choose a subdirectory such as \"rust\".")
	}
	if engineDir == extensionDir {
		return oerrors.NewValidationError(
			fmt.Sprintf("engine and extension directories both resolve to %q", engineDir),
			engineDir, "", "Use two different directory names.")
	}
	if engineDir == CurrentDir {
		return nil
	}
	if within(extensionDir, engineDir) || within(engineDir, extensionDir) {
		return oerrors.NewValidationError(
			fmt.Sprintf("directories %q and %q overlap", engineDir, extensionDir),
			"", "", "Place the engine and extension trees side by side.")
	}
	return nil
}

// within reports whether child lies below parent.
func within(child, parent string) bool {
	return strings.HasPrefix(filepath.ToSlash(child)+"/", filepath.ToSlash(parent)+"/")
}
