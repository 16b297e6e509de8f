// Package templates renders the files of the engine and extension trees.
package templates

import "strings"

// TemplateData holds the values substituted into rendered files.
type TemplateData struct {
	// ProjectName is the display name written to project.godot.
	ProjectName string

	// GodotVersion is the MAJOR.MINOR engine version listed in config/features.
	GodotVersion string

	// LibraryName is the Rust crate name.
	LibraryName string

	// ExtensionPath is the slash separated path from the engine tree to the
	// extension tree (e.g. "../rust").
	ExtensionPath string

	// EnginePath is the slash separated path from the extension tree to the
	// engine tree (e.g. "../godot").
	EnginePath string

	// GodotExecutable is the editor binary launched by the debug configuration.
	GodotExecutable string

	// Reloadable marks the extension as hot reloadable.
	Reloadable bool
}

// ArtifactName is the file stem cargo uses for the compiled library.
// Cargo replaces hyphens in crate names with underscores.
func (d TemplateData) ArtifactName() string {
	return strings.ReplaceAll(d.LibraryName, "-", "_")
}

// TemplateFile is a rendered file ready to be written.
type TemplateFile struct {
	// SourcePath is the path within the embedded filesystem.
	SourcePath string

	// TargetPath is the output path relative to its tree.
	TargetPath string

	// Description is a short human readable summary of the file.
	Description string

	// Content is the rendered content.
	Content []byte
}
