package templates

// Fixed file names inside the generated trees.
const (
	ProjectFile         = "project.godot"
	IgnoreFile          = ".gitignore"
	IconFile            = "icon.svg"
	CargoFile           = "Cargo.toml"
	LibrarySourceFile   = "src/lib.rs"
	EditorDir           = ".vscode"
	LaunchConfigFile    = ".vscode/launch.json"
	RecommendationsFile = ".vscode/extensions.json"
)

// ManifestFile returns the file name of the extension manifest for a library.
func ManifestFile(libraryName string) string {
	return libraryName + ".gdextension"
}

// EngineFiles renders every file of the engine tree, in write order.
func EngineFiles(d TemplateData) []TemplateFile {
	return []TemplateFile{
		{
			SourcePath:  srcProjectDescriptor,
			TargetPath:  ProjectFile,
			Description: "Godot project settings",
			Content:     ProjectDescriptor(d),
		},
		{
			SourcePath:  srcExtensionManifest,
			TargetPath:  ManifestFile(d.LibraryName),
			Description: "GDExtension manifest",
			Content:     ExtensionManifest(d),
		},
		{
			SourcePath:  srcEngineIgnore,
			TargetPath:  IgnoreFile,
			Description: "Godot ignore rules",
			Content:     EngineIgnore(),
		},
		{
			SourcePath:  srcIcon,
			TargetPath:  IconFile,
			Description: "Project icon",
			Content:     Icon(),
		},
	}
}

// ExtensionFiles renders every base file of the extension tree, in write order.
func ExtensionFiles(d TemplateData) []TemplateFile {
	return []TemplateFile{
		{
			SourcePath:  srcBuildManifest,
			TargetPath:  CargoFile,
			Description: "Cargo manifest",
			Content:     BuildManifest(d),
		},
		{
			SourcePath:  srcExtensionIgnore,
			TargetPath:  IgnoreFile,
			Description: "Cargo ignore rules",
			Content:     ExtensionIgnore(),
		},
		{
			SourcePath:  srcLibrarySource,
			TargetPath:  LibrarySourceFile,
			Description: "Extension entry point",
			Content:     LibrarySource(),
		},
	}
}

// LaunchConfigTemplate renders the editor debug configuration.
func LaunchConfigTemplate(d TemplateData) TemplateFile {
	return TemplateFile{
		SourcePath:  srcLaunchConfig,
		TargetPath:  LaunchConfigFile,
		Description: "Editor debug configuration",
		Content:     LaunchConfig(d),
	}
}

// RecommendationsTemplate renders the editor extension recommendations.
func RecommendationsTemplate() TemplateFile {
	return TemplateFile{
		SourcePath:  srcEditorRecommendations,
		TargetPath:  RecommendationsFile,
		Description: "Recommended editor extensions",
		Content:     EditorRecommendations(),
	}
}

// ListSourceFiles returns the embedded source of every renderable file.
func ListSourceFiles() []string {
	return []string{
		srcProjectDescriptor,
		srcExtensionManifest,
		srcEngineIgnore,
		srcIcon,
		srcBuildManifest,
		srcExtensionIgnore,
		srcLibrarySource,
		srcLaunchConfig,
		srcEditorRecommendations,
	}
}
