package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"text/template"
)

//go:embed files
var templateFS embed.FS

const (
	srcProjectDescriptor     = "files/engine/project.godot.tmpl"
	srcExtensionManifest     = "files/engine/library.gdextension.tmpl"
	srcEngineIgnore          = "files/engine/gitignore"
	srcIcon                  = "files/engine/icon.svg"
	srcBuildManifest         = "files/extension/Cargo.toml.tmpl"
	srcExtensionIgnore       = "files/extension/gitignore"
	srcLibrarySource         = "files/extension/lib.rs"
	srcLaunchConfig          = "files/vscode/launch.json.tmpl"
	srcEditorRecommendations = "files/vscode/extensions.json"
)

var funcs = template.FuncMap{
	"godotString": godotString,
	"jsonString":  jsonString,
}

var (
	projectTmpl  = mustParse(srcProjectDescriptor)
	manifestTmpl = mustParse(srcExtensionManifest)
	cargoTmpl    = mustParse(srcBuildManifest)
	launchTmpl   = mustParse(srcLaunchConfig)
)

// ProjectDescriptor renders project.godot.
func ProjectDescriptor(d TemplateData) []byte {
	return execute(projectTmpl, d)
}

// ExtensionManifest renders the <library>.gdextension file. The reloadable
// line is present only when d.Reloadable is set.
func ExtensionManifest(d TemplateData) []byte {
	return execute(manifestTmpl, d)
}

// BuildManifest renders Cargo.toml.
func BuildManifest(d TemplateData) []byte {
	return execute(cargoTmpl, d)
}

// LaunchConfig renders .vscode/launch.json.
func LaunchConfig(d TemplateData) []byte {
	return execute(launchTmpl, d)
}

// EngineIgnore returns the engine tree .gitignore.
func EngineIgnore() []byte { return static(srcEngineIgnore) }

// ExtensionIgnore returns the extension tree .gitignore.
func ExtensionIgnore() []byte { return static(srcExtensionIgnore) }

// LibrarySource returns the src/lib.rs entry point.
func LibrarySource() []byte { return static(srcLibrarySource) }

// EditorRecommendations returns .vscode/extensions.json.
func EditorRecommendations() []byte { return static(srcEditorRecommendations) }

// Icon returns the default project icon.
func Icon() []byte { return static(srcIcon) }

func mustParse(name string) *template.Template {
	content, err := templateFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("reading embedded template %s: %v", name, err))
	}
	return template.Must(template.New(path.Base(name)).
		Funcs(funcs).
		Option("missingkey=error").
		Parse(string(content)))
}

// execute panics on failure: templates are embedded at build time and every
// field they reference exists on TemplateData.
func execute(t *template.Template, data any) []byte {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("executing template %s: %v", t.Name(), err))
	}
	return buf.Bytes()
}

func static(name string) []byte {
	content, err := templateFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("reading embedded file %s: %v", name, err))
	}
	return bytes.Clone(content)
}

var godotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// godotString quotes s as a Godot config string literal.
func godotString(s string) string {
	return `"` + godotEscaper.Replace(s) + `"`
}

// jsonString quotes s as a JSON string literal without HTML escaping.
func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
