// Package scaffold drives a scaffolding session from the first question to
// the last written file.
package scaffold

import (
	"context"

	"github.com/spf13/afero"

	"github.com/gdscaffold/cli/internal/config"
	"github.com/gdscaffold/cli/internal/feature"
	"github.com/gdscaffold/cli/internal/output"
	"github.com/gdscaffold/cli/internal/paths"
	"github.com/gdscaffold/cli/internal/process"
	"github.com/gdscaffold/cli/internal/prompt"
	"github.com/gdscaffold/cli/internal/templates"
	"github.com/gdscaffold/cli/internal/workspace"
)

// Options are the collaborators of an Orchestrator.
type Options struct {
	// Fs receives every written file.
	Fs afero.Fs

	// Prompter answers the session questions.
	Prompter prompt.Prompter

	// Runner runs external commands.
	Runner process.Runner

	// Config supplies prompt defaults and the Godot version. nil means
	// config.DefaultConfig().
	Config *config.Config
}

// Result is what a session produced, including partial output after a failure.
type Result struct {
	// Config is the collected answer set.
	Config *ProjectConfig

	// Paths is the resolved topology.
	Paths *paths.ResolvedPaths

	// EngineFiles are the files written to the engine tree.
	EngineFiles []templates.TemplateFile

	// ExtensionFiles are the files written to the extension tree.
	ExtensionFiles []templates.TemplateFile

	// Steps are the executed feature steps.
	Steps []feature.StepResult
}

// Orchestrator runs one scaffolding session. It is not reusable.
type Orchestrator struct {
	opts   Options
	cfg    *config.Config
	writer *workspace.Writer
	state  State
}

// New creates an Orchestrator in the CollectingConfig state.
func New(opts Options) *Orchestrator {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Orchestrator{
		opts:   opts,
		cfg:    cfg.WithDefaults(),
		writer: workspace.NewWriter(opts.Fs),
		state:  CollectingConfig,
	}
}

// State returns the current state.
func (o *Orchestrator) State() State {
	return o.state
}

// Run executes the session. Any failure moves the session to Failed and is
// returned as a *StateError naming the state it happened in. Files written
// before the failure are left in place.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	version, err := config.NormalizeGodotVersion(o.cfg.GodotVersion)
	if err != nil {
		return res, o.fail(err)
	}

	pc, err := collectConfig(o.opts.Prompter, o.cfg.Defaults)
	if err != nil {
		return res, o.fail(err)
	}
	res.Config = pc

	if err := o.advance(ctx, ResolvingPaths); err != nil {
		return res, err
	}
	rp, err := paths.Resolve(pc.Root, pc.EngineDir, pc.ExtensionDir)
	if err != nil {
		return res, o.fail(err)
	}
	res.Paths = rp
	output.Debug("resolved paths",
		"engine", rp.EnginePath, "extension", rp.ExtensionPath,
		"depth", rp.Depth, "extensionDepth", rp.ExtensionDepth)

	data := templates.TemplateData{
		ProjectName:   pc.ProjectName,
		GodotVersion:  version,
		LibraryName:   pc.LibraryName,
		ExtensionPath: rp.ExtensionFromEngine(),
		EnginePath:    rp.EngineFromExtension(),
		Reloadable:    pc.Features.Has(feature.ReloadableExtension),
	}

	if err := o.advance(ctx, WritingEngineTree); err != nil {
		return res, err
	}
	output.Info("Creating Godot Project")
	if res.EngineFiles, err = o.writeTree("godot", rp.EnginePath, templates.EngineFiles(data)); err != nil {
		return res, o.fail(err)
	}

	if err := o.advance(ctx, WritingExtensionTree); err != nil {
		return res, err
	}
	output.Info("Creating Rust Project")
	if res.ExtensionFiles, err = o.writeTree("rust", rp.ExtensionPath, templates.ExtensionFiles(data)); err != nil {
		return res, o.fail(err)
	}

	if err := o.advance(ctx, ApplyingFeatures); err != nil {
		return res, err
	}
	applier := feature.NewApplier(feature.Env{
		Writer:            o.writer,
		Runner:            o.opts.Runner,
		Prompter:          o.opts.Prompter,
		Paths:             rp,
		Data:              data,
		DefaultExecutable: o.cfg.Defaults.GodotExecutable,
	})
	if res.Steps, err = applier.Apply(ctx, pc.Features); err != nil {
		return res, o.fail(err)
	}

	o.transition(Done)
	return res, nil
}

// writeTree writes files below dir and returns the ones that were written.
func (o *Orchestrator) writeTree(name, dir string, files []templates.TemplateFile) ([]templates.TemplateFile, error) {
	written, err := o.writer.WriteTree(dir, files)
	output.TreeLogger(name).Debug("tree written", "dir", dir, "files", len(written))
	return files[:len(written)], err
}

// advance moves to the next state unless ctx is done.
func (o *Orchestrator) advance(ctx context.Context, to State) error {
	if err := ctx.Err(); err != nil {
		return o.fail(err)
	}
	o.transition(to)
	return nil
}

func (o *Orchestrator) transition(to State) {
	output.Debug("state transition", "from", o.state, "to", to)
	o.state = to
}

// fail records the failing state, enters Failed and wraps err.
func (o *Orchestrator) fail(err error) error {
	at := o.state
	o.transition(Failed)
	return &StateError{State: at, Err: err}
}
