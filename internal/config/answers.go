package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	oerrors "github.com/gdscaffold/cli/internal/errors"
	"github.com/gdscaffold/cli/internal/prompt"
)

// Answers is a pre-recorded set of prompt answers for non-interactive runs.
type Answers struct {
	Root            string   `yaml:"root,omitempty"`
	EngineDir       string   `yaml:"engineDir,omitempty"`
	ProjectName     string   `yaml:"projectName,omitempty"`
	ExtensionDir    string   `yaml:"extensionDir,omitempty"`
	LibraryName     string   `yaml:"libraryName,omitempty"`
	GodotExecutable string   `yaml:"godotExecutable,omitempty"`
	Features        []string `yaml:"features,omitempty"`
}

// Prompter returns a scripted prompter that replays the answers.
func (a *Answers) Prompter() *prompt.Scripted {
	text := map[string]string{}
	set := func(key, value string) {
		if value != "" {
			text[key] = value
		}
	}
	set(prompt.KeyRoot, a.Root)
	set(prompt.KeyEngineDir, a.EngineDir)
	set(prompt.KeyProjectName, a.ProjectName)
	set(prompt.KeyExtensionDir, a.ExtensionDir)
	set(prompt.KeyLibraryName, a.LibraryName)
	set(prompt.KeyGodotExecutable, a.GodotExecutable)

	return prompt.NewScripted(text, map[string][]string{prompt.KeyFeatures: a.Features})
}

// AnswersValidator checks answers documents against the embedded CUE schema.
type AnswersValidator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewAnswersValidator compiles the embedded answers schema.
func NewAnswersValidator() (*AnswersValidator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(answersSchemaCUE)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling answers schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Answers"))
	if !def.Exists() {
		return nil, fmt.Errorf("answers schema has no #Answers definition")
	}

	return &AnswersValidator{ctx: ctx, schema: def}, nil
}

// Validate checks a decoded YAML document.
func (v *AnswersValidator) Validate(doc map[string]any) error {
	val := v.ctx.Encode(doc)
	if val.Err() != nil {
		return val.Err()
	}
	return v.schema.Unify(val).Validate(cue.Concrete(true))
}

// ParseAnswers decodes and validates an answers document. source names the
// document in error messages.
func ParseAnswers(data []byte, source string) (*Answers, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("parsing answers file: %v", err), source, "", "The answers file must be a YAML mapping.")
	}
	if doc == nil {
		doc = map[string]any{}
	}

	validator, err := NewAnswersValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(doc); err != nil {
		return nil, oerrors.NewValidationError(
			"answers file does not match the schema", source, "",
			cueerrors.Details(err, nil))
	}

	var answers Answers
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("decoding answers file: %v", err), source, "", "")
	}
	return &answers, nil
}

// LoadAnswers reads and validates the answers file at path.
func LoadAnswers(path string) (*Answers, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding answers path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("answers file %s: %w", expanded, oerrors.ErrNotFound)
		}
		return nil, oerrors.NewFilesystemError("reading answers file", expanded, err)
	}

	return ParseAnswers(data, expanded)
}
