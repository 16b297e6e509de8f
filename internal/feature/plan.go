package feature

import (
	"context"
	"runtime"

	"github.com/gdscaffold/cli/internal/output"
	"github.com/gdscaffold/cli/internal/paths"
	"github.com/gdscaffold/cli/internal/process"
	"github.com/gdscaffold/cli/internal/prompt"
	"github.com/gdscaffold/cli/internal/templates"
	"github.com/gdscaffold/cli/internal/workspace"
)

// Step is one planned post-processing action.
type Step struct {
	// Feature is the feature that produced the step.
	Feature Feature

	// Name is a short human readable summary.
	Name string

	// Order is the position of the step in the plan, starting at 0.
	Order int

	// NeedsInput is set when the step asks a question before acting.
	NeedsInput bool

	run func(ctx context.Context, env *Env) (*StepResult, error)
}

// StepResult describes the side effects of an executed step.
type StepResult struct {
	// Step is the executed step.
	Step Step

	// Files are the written files, relative to the extension tree.
	Files []string

	// Commands are the external commands that ran.
	Commands []string
}

// Env is everything a step may touch.
type Env struct {
	// Writer persists files.
	Writer *workspace.Writer

	// Runner runs external commands.
	Runner process.Runner

	// Prompter answers the questions of steps that need input.
	Prompter prompt.TextPrompter

	// Paths is the resolved directory topology.
	Paths *paths.ResolvedPaths

	// Data is the template data of the base trees.
	Data templates.TemplateData

	// DefaultExecutable is offered as the default Godot executable location.
	DefaultExecutable string
}

// Plan returns the steps for the selected features. The order follows All()
// regardless of selection order. Features that only change rendered files,
// such as ReloadableExtension, produce no step.
func Plan(selected Set) []Step {
	var steps []Step
	for _, f := range selected.Sorted() {
		s, ok := stepFor(f)
		if !ok {
			continue
		}
		s.Order = len(steps)
		steps = append(steps, s)
	}
	return steps
}

func stepFor(f Feature) (Step, bool) {
	switch f {
	case Git:
		return Step{Feature: f, Name: "Initializing Git", run: initGit}, true
	case VscodeLaunchConfig:
		return Step{Feature: f, Name: "Creating VSCode Launch Config", NeedsInput: true, run: writeLaunchConfig}, true
	case VscodeExtensions:
		return Step{Feature: f, Name: "Creating VSCode Extensions Config", run: writeRecommendations}, true
	default:
		return Step{}, false
	}
}

// DefaultGodotExecutable returns the usual Godot install location for goos.
func DefaultGodotExecutable(goos string) string {
	switch goos {
	case "windows":
		return `C:\Program Files\Godot\Godot_v4.2.1-stable_win64.exe`
	case "darwin":
		return "/Applications/Godot.app/Contents/MacOS/Godot"
	default:
		return "/usr/bin/godot"
	}
}

// Applier executes planned steps.
type Applier struct {
	env *Env
}

// NewApplier creates an Applier. An empty DefaultExecutable is replaced by
// the default for the running OS.
func NewApplier(env Env) *Applier {
	if env.DefaultExecutable == "" {
		env.DefaultExecutable = DefaultGodotExecutable(runtime.GOOS)
	}
	return &Applier{env: &env}
}

// Execute runs one step.
func (a *Applier) Execute(ctx context.Context, step Step) (*StepResult, error) {
	output.Info(step.Name)
	output.Debug("applying feature", "feature", step.Feature, "order", step.Order)
	res, err := step.run(ctx, a.env)
	if err != nil {
		return nil, err
	}
	res.Step = step
	return res, nil
}

// Apply plans the selected features and executes each step in order. The
// first failure stops the run.
func (a *Applier) Apply(ctx context.Context, selected Set) ([]StepResult, error) {
	steps := Plan(selected)
	results := make([]StepResult, 0, len(steps))
	for _, s := range steps {
		res, err := a.Execute(ctx, s)
		if err != nil {
			return results, err
		}
		results = append(results, *res)
	}
	return results, nil
}

func initGit(ctx context.Context, env *Env) (*StepResult, error) {
	if err := env.Runner.Run(ctx, env.Paths.Root, "git", "init"); err != nil {
		return nil, err
	}
	return &StepResult{Commands: []string{process.CommandLine("git", "init")}}, nil
}

func writeLaunchConfig(_ context.Context, env *Env) (*StepResult, error) {
	exe, err := env.Prompter.Text(prompt.Question{
		Key:     prompt.KeyGodotExecutable,
		Label:   "Godot Executable Location: ",
		Default: env.DefaultExecutable,
	})
	if err != nil {
		return nil, err
	}

	data := env.Data
	data.GodotExecutable = exe
	return writeEditorFile(env, templates.LaunchConfigTemplate(data))
}

func writeRecommendations(_ context.Context, env *Env) (*StepResult, error) {
	return writeEditorFile(env, templates.RecommendationsTemplate())
}

func writeEditorFile(env *Env, file templates.TemplateFile) (*StepResult, error) {
	written, err := env.Writer.WriteTree(env.Paths.ExtensionPath, []templates.TemplateFile{file})
	if err != nil {
		return nil, err
	}
	return &StepResult{Files: written}, nil
}
