package scaffold

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdscaffold/cli/internal/config"
	oerrors "github.com/gdscaffold/cli/internal/errors"
	"github.com/gdscaffold/cli/internal/prompt"
	"github.com/gdscaffold/cli/internal/testutil"
)

type session struct {
	fs     *testutil.RecordingFs
	runner *testutil.RecordingRunner
	asker  *prompt.Scripted
	orch   *Orchestrator
}

func demoAnswers() map[string]string {
	return map[string]string{
		prompt.KeyRoot:         ".",
		prompt.KeyEngineDir:    "godot",
		prompt.KeyProjectName:  "Demo",
		prompt.KeyExtensionDir: "rust",
		prompt.KeyLibraryName:  "demo",
	}
}

func newSession(t *testing.T, answers map[string]string, features ...string) *session {
	t.Helper()
	s := &session{
		fs:     testutil.NewRecordingFs(afero.NewMemMapFs()),
		runner: &testutil.RecordingRunner{},
		asker:  prompt.NewScripted(answers, map[string][]string{prompt.KeyFeatures: features}),
	}
	s.orch = New(Options{Fs: s.fs, Prompter: s.asker, Runner: s.runner})
	return s
}

func (s *session) read(t *testing.T, path string) string {
	t.Helper()
	b, err := afero.ReadFile(s.fs, filepath.FromSlash(path))
	require.NoError(t, err)
	return string(b)
}

func TestRun_BaseTreesOnly(t *testing.T) {
	s := newSession(t, demoAnswers())

	res, err := s.orch.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Done, s.orch.State())

	assert.Equal(t, []string{
		"godot/project.godot",
		"godot/demo.gdextension",
		"godot/.gitignore",
		"godot/icon.svg",
		"rust/Cargo.toml",
		"rust/.gitignore",
		"rust/src/lib.rs",
	}, s.fs.Written)
	assert.Equal(t, 7, res.FileCount())
	assert.Empty(t, s.runner.Calls)
	assert.NotContains(t, s.read(t, "godot/demo.gdextension"), "reloadable")
}

func TestRun_ReloadableWithGit(t *testing.T) {
	s := newSession(t, demoAnswers(), "reloadable-extension", "git")

	res, err := s.orch.Run(context.Background())
	require.NoError(t, err)

	manifest := s.read(t, "godot/demo.gdextension")
	assert.Equal(t, 1, strings.Count(manifest, "reloadable = true\n"))

	require.Len(t, s.runner.Calls, 1)
	assert.Equal(t, testutil.Call{Dir: ".", Name: "git", Args: []string{"init"}}, s.runner.Calls[0])
	assert.Len(t, s.fs.Written, 7)
	require.Len(t, res.Steps, 1)
}

func TestRun_AskedInSessionOrder(t *testing.T) {
	s := newSession(t, demoAnswers(), "vscode-launch-config")

	_, err := s.orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		prompt.KeyRoot,
		prompt.KeyEngineDir,
		prompt.KeyProjectName,
		prompt.KeyExtensionDir,
		prompt.KeyLibraryName,
		prompt.KeyFeatures,
		prompt.KeyGodotExecutable,
	}, s.asker.Asked())
}

func TestRun_AllFeatures(t *testing.T) {
	answers := demoAnswers()
	answers[prompt.KeyGodotExecutable] = "/opt/godot"
	s := newSession(t, answers, "vscode-extensions", "vscode-launch-config", "git", "reloadable-extension")

	res, err := s.orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 9, res.FileCount())
	assert.Contains(t, s.read(t, "rust/.vscode/launch.json"), `"cwd": "${workspaceFolder}/../godot"`)
	assert.Contains(t, s.read(t, "rust/.vscode/launch.json"), `"program": "/opt/godot"`)
	assert.Contains(t, s.read(t, "rust/.vscode/extensions.json"), "rust-lang.rust")

	_, ext := res.Summary()
	assert.Contains(t, ext, ".vscode/launch.json")
	assert.Contains(t, ext, ".vscode/extensions.json")
	assert.Contains(t, ext, "Cargo.toml")
}

func TestRun_Defaults(t *testing.T) {
	s := newSession(t, map[string]string{prompt.KeyProjectName: "Space Shooter"})

	res, err := s.orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "space_shooter", res.Config.LibraryName)
	assert.Equal(t, ".", res.Config.Root)
	assert.Contains(t, s.fs.Written, "godot/space_shooter.gdextension")
	assert.Contains(t, s.read(t, "rust/Cargo.toml"), `name = "space_shooter"`)
}

func TestRun_ConfigDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Defaults.EngineDir = "game"
	cfg.Defaults.ExtensionDir = "native/ext"
	cfg.GodotVersion = "4.3.1"

	s := newSession(t, map[string]string{prompt.KeyProjectName: "Demo"})
	s.orch = New(Options{Fs: s.fs, Prompter: s.asker, Runner: s.runner, Config: cfg})

	res, err := s.orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Paths.ExtensionDepth)
	assert.Contains(t, s.read(t, "game/project.godot"), `PackedStringArray("4.3"`)
	assert.Contains(t, s.read(t, "game/demo.gdextension"), `"res://../native/ext/target/debug/libdemo.so"`)
}

func TestRun_EngineAtRoot(t *testing.T) {
	answers := demoAnswers()
	answers[prompt.KeyEngineDir] = "."
	s := newSession(t, answers)

	res, err := s.orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, res.Paths.Depth)
	assert.Contains(t, s.fs.Written, "project.godot")
	assert.Contains(t, s.read(t, "demo.gdextension"), `"res://rust/target/debug/libdemo.so"`)
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name      string
		answers   func() map[string]string
		features  []string
		fs        func(afero.Fs) afero.Fs
		runnerErr error
		wantState State
		wantErr   error
	}{
		{
			name:      "missing project name",
			answers:   func() map[string]string { a := demoAnswers(); delete(a, prompt.KeyProjectName); return a },
			wantState: CollectingConfig,
			wantErr:   oerrors.ErrValidation,
		},
		{
			name:      "invalid library name",
			answers:   func() map[string]string { a := demoAnswers(); a[prompt.KeyLibraryName] = "my lib"; return a },
			wantState: CollectingConfig,
			wantErr:   oerrors.ErrValidation,
		},
		{
			name:      "unknown feature",
			answers:   demoAnswers,
			features:  []string{"docker"},
			wantState: CollectingConfig,
			wantErr:   oerrors.ErrValidation,
		},
		{
			name:      "overlapping trees",
			answers:   func() map[string]string { a := demoAnswers(); a[prompt.KeyExtensionDir] = "godot/rust"; return a },
			wantState: ResolvingPaths,
			wantErr:   oerrors.ErrValidation,
		},
		{
			name:      "engine tree not writable",
			answers:   demoAnswers,
			fs:        func(fs afero.Fs) afero.Fs { return testutil.FailingFs(fs, "icon.svg") },
			wantState: WritingEngineTree,
			wantErr:   oerrors.ErrFilesystem,
		},
		{
			name:      "extension tree not writable",
			answers:   demoAnswers,
			fs:        func(fs afero.Fs) afero.Fs { return testutil.FailingFs(fs, "lib.rs") },
			wantState: WritingExtensionTree,
			wantErr:   oerrors.ErrFilesystem,
		},
		{
			name:      "git init fails",
			answers:   demoAnswers,
			features:  []string{"git"},
			runnerErr: oerrors.NewProcessError("git init", ".", errors.New("exit status 1")),
			wantState: ApplyingFeatures,
			wantErr:   oerrors.ErrProcess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fs afero.Fs = afero.NewMemMapFs()
			if tt.fs != nil {
				fs = tt.fs(fs)
			}
			runner := &testutil.RecordingRunner{Err: tt.runnerErr}
			asker := prompt.NewScripted(tt.answers(), map[string][]string{prompt.KeyFeatures: tt.features})
			orch := New(Options{Fs: fs, Prompter: asker, Runner: runner})

			_, err := orch.Run(context.Background())
			require.Error(t, err)

			var se *StateError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.wantState, se.State)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Failed, orch.State())
		})
	}
}

func TestRun_PartialTreeIsKept(t *testing.T) {
	mem := afero.NewMemMapFs()
	orch := New(Options{
		Fs:       testutil.FailingFs(mem, "lib.rs"),
		Prompter: prompt.NewScripted(demoAnswers(), nil),
		Runner:   &testutil.RecordingRunner{},
	})

	res, err := orch.Run(context.Background())
	require.Error(t, err)

	assert.Len(t, res.EngineFiles, 4)
	assert.Len(t, res.ExtensionFiles, 2)
	for _, p := range []string{"godot/project.godot", "rust/Cargo.toml", "rust/.gitignore"} {
		ok, _ := afero.Exists(mem, filepath.FromSlash(p))
		assert.True(t, ok, p)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	s := newSession(t, demoAnswers())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.orch.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.fs.Written)
}

func TestRun_InvalidGodotVersion(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GodotVersion = "3.5"
	s := newSession(t, demoAnswers())
	s.orch = New(Options{Fs: s.fs, Prompter: s.asker, Runner: s.runner, Config: cfg})

	_, err := s.orch.Run(context.Background())
	require.Error(t, err)
	assert.Empty(t, s.asker.Asked())
}
