package templates

import (
	"encoding/json"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoData() TemplateData {
	return TemplateData{
		ProjectName:     "Demo",
		GodotVersion:    "4.2",
		LibraryName:     "demo",
		ExtensionPath:   "../rust",
		EnginePath:      "../godot",
		GodotExecutable: "/usr/bin/godot",
	}
}

const demoManifest = `[configuration]
entry_symbol = "gdext_rust_init"
compatibility_minimum = 4.1

[libraries]
linux.debug.x86_64 =     "res://../rust/target/debug/libdemo.so"
linux.release.x86_64 =   "res://../rust/target/release/libdemo.so"
windows.debug.x86_64 =   "res://../rust/target/debug/demo.dll"
windows.release.x86_64 = "res://../rust/target/release/demo.dll"
macos.debug =            "res://../rust/target/debug/libdemo.dylib"
macos.release =          "res://../rust/target/release/libdemo.dylib"
macos.debug.arm64 =      "res://../rust/target/debug/libdemo.dylib"
macos.release.arm64 =    "res://../rust/target/release/libdemo.dylib"
`

func TestRenderers_Deterministic(t *testing.T) {
	d := demoData()
	d.Reloadable = true

	renderers := map[string]func() []byte{
		"project":         func() []byte { return ProjectDescriptor(d) },
		"manifest":        func() []byte { return ExtensionManifest(d) },
		"cargo":           func() []byte { return BuildManifest(d) },
		"launch":          func() []byte { return LaunchConfig(d) },
		"engine ignore":   EngineIgnore,
		"ext ignore":      ExtensionIgnore,
		"lib.rs":          LibrarySource,
		"recommendations": EditorRecommendations,
		"icon":            Icon,
	}

	for name, render := range renderers {
		t.Run(name, func(t *testing.T) {
			first := render()
			second := render()
			assert.NotEmpty(t, first)
			assert.Equal(t, first, second)
		})
	}
}

func TestStaticRenderers_ReturnCopies(t *testing.T) {
	first := EngineIgnore()
	first[0] = 'X'
	assert.NotEqual(t, first, EngineIgnore())
}

func TestProjectDescriptor(t *testing.T) {
	out := string(ProjectDescriptor(demoData()))

	assert.Contains(t, out, "config_version=5\n")
	assert.Contains(t, out, "config/name=\"Demo\"\n")
	assert.Contains(t, out, `config/features=PackedStringArray("4.2", "GL Compatibility")`)
	assert.Contains(t, out, `config/icon="res://icon.svg"`)
	assert.Contains(t, out, `renderer/rendering_method="gl_compatibility"`)
	assert.Contains(t, out, `renderer/rendering_method.mobile="gl_compatibility"`)
}

func TestProjectDescriptor_EscapesName(t *testing.T) {
	d := demoData()
	d.ProjectName = `The "Best" \ Game`

	out := string(ProjectDescriptor(d))
	assert.Contains(t, out, `config/name="The \"Best\" \\ Game"`)
}

func TestExtensionManifest_Exact(t *testing.T) {
	assert.Equal(t, demoManifest, string(ExtensionManifest(demoData())))
}

func TestExtensionManifest_ReloadableLine(t *testing.T) {
	tests := []struct {
		name       string
		reloadable bool
		wantCount  int
	}{
		{"not reloadable", false, 0},
		{"reloadable", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := demoData()
			d.Reloadable = tt.reloadable

			out := string(ExtensionManifest(d))
			assert.Equal(t, tt.wantCount, strings.Count(out, "reloadable"))
			assert.Equal(t, tt.wantCount, strings.Count(out, "\nreloadable = true\n"))
		})
	}
}

func TestExtensionManifest_ReloadableOnlyAddsOneLine(t *testing.T) {
	d := demoData()
	plain := ExtensionManifest(d)
	d.Reloadable = true
	reloadable := ExtensionManifest(d)

	assert.Equal(t, string(plain), strings.Replace(string(reloadable), "reloadable = true\n", "", 1))
}

func TestExtensionManifest_PathPrefix(t *testing.T) {
	tests := []struct {
		name          string
		extensionPath string
		want          string
	}{
		{"sibling", "../rust", `"res://../rust/target/debug/libdemo.so"`},
		{"engine at root", "rust", `"res://rust/target/debug/libdemo.so"`},
		{"nested engine", "../../native/rust", `"res://../../native/rust/target/debug/libdemo.so"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := demoData()
			d.ExtensionPath = tt.extensionPath
			out := string(ExtensionManifest(d))
			assert.Contains(t, out, tt.want)
			assert.Equal(t, 8, strings.Count(out, "res://"+tt.extensionPath+"/target/"))
		})
	}
}

func TestExtensionManifest_HyphenatedCrate(t *testing.T) {
	d := demoData()
	d.LibraryName = "my-game"

	out := string(ExtensionManifest(d))
	assert.Contains(t, out, "libmy_game.so")
	assert.Contains(t, out, "my_game.dll")
	assert.NotContains(t, out, "my-game")
}

func TestBuildManifest(t *testing.T) {
	var parsed struct {
		Package struct {
			Name    string `toml:"name"`
			Version string `toml:"version"`
			Edition string `toml:"edition"`
		} `toml:"package"`
		Lib struct {
			CrateType []string `toml:"crate-type"`
		} `toml:"lib"`
		Dependencies map[string]map[string]string `toml:"dependencies"`
	}

	require.NoError(t, toml.Unmarshal(BuildManifest(demoData()), &parsed))
	assert.Equal(t, "demo", parsed.Package.Name)
	assert.Equal(t, "0.1.0", parsed.Package.Version)
	assert.Equal(t, "2021", parsed.Package.Edition)
	assert.Equal(t, []string{"cdylib"}, parsed.Lib.CrateType)
	assert.Equal(t, "https://github.com/godot-rust/gdext", parsed.Dependencies["godot"]["git"])
	assert.Equal(t, "master", parsed.Dependencies["godot"]["branch"])
}

func TestLaunchConfig(t *testing.T) {
	out := string(LaunchConfig(demoData()))

	assert.Contains(t, out, `"cwd": "${workspaceFolder}/../godot",`)
	assert.Contains(t, out, `"program": "/usr/bin/godot"`)
	assert.Contains(t, out, `"preLaunchTask": "rust: cargo build",`)
}

func TestLaunchConfig_EscapesWindowsPath(t *testing.T) {
	d := demoData()
	d.GodotExecutable = `C:\Program Files\Godot\Godot_v4.2.1-stable_win64.exe`

	out := string(LaunchConfig(d))
	assert.Contains(t, out, `"program": "C:\\Program Files\\Godot\\Godot_v4.2.1-stable_win64.exe"`)
}

func TestEditorRecommendations_ValidJSON(t *testing.T) {
	var parsed struct {
		Recommendations []string `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(EditorRecommendations(), &parsed))
	assert.Equal(t, []string{
		"rust-lang.rust",
		"vadimcn.vscode-lldb",
		"1YiB.rust-bundle",
		"tamasfe.even-better-toml",
	}, parsed.Recommendations)
}

func TestLibrarySource(t *testing.T) {
	out := string(LibrarySource())
	assert.Contains(t, out, "use godot::prelude::*;")
	assert.Contains(t, out, "#[gdextension]")
	assert.Contains(t, out, "unsafe impl ExtensionLibrary for MyExtension {}")
}

func TestIgnoreFiles(t *testing.T) {
	assert.Contains(t, string(EngineIgnore()), ".godot/\n")
	assert.Contains(t, string(ExtensionIgnore()), "target/\n")
}

func TestIcon(t *testing.T) {
	out := string(Icon())
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Contains(t, out, "</svg>")
}

func TestListSourceFiles_AllEmbedded(t *testing.T) {
	for _, src := range ListSourceFiles() {
		_, err := templateFS.ReadFile(src)
		assert.NoError(t, err, "embedded file %s", src)
	}
}

func TestEngineFiles(t *testing.T) {
	files := EngineFiles(demoData())

	targets := make([]string, 0, len(files))
	for _, f := range files {
		targets = append(targets, f.TargetPath)
		assert.NotEmpty(t, f.Content, f.TargetPath)
		assert.NotEmpty(t, f.Description, f.TargetPath)
	}
	assert.Equal(t, []string{"project.godot", "demo.gdextension", ".gitignore", "icon.svg"}, targets)
}

func TestExtensionFiles(t *testing.T) {
	files := ExtensionFiles(demoData())

	targets := make([]string, 0, len(files))
	for _, f := range files {
		targets = append(targets, f.TargetPath)
	}
	assert.Equal(t, []string{"Cargo.toml", ".gitignore", "src/lib.rs"}, targets)
}

func TestEditorTemplates(t *testing.T) {
	assert.Equal(t, ".vscode/launch.json", LaunchConfigTemplate(demoData()).TargetPath)
	assert.Equal(t, ".vscode/extensions.json", RecommendationsTemplate().TargetPath)
}
