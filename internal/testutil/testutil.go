// Package testutil provides test helpers for gdscaffold tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// FixturePath returns the absolute path to a test fixture.
func FixturePath(t *testing.T, parts ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	// Walk up to find tests/fixtures
	dir := wd
	for {
		fixturesPath := filepath.Join(dir, "tests", "fixtures")
		if _, err := os.Stat(fixturesPath); err == nil {
			return filepath.Join(append([]string{fixturesPath}, parts...)...)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find tests/fixtures directory from %s", wd)
		}
		dir = parent
	}
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// RecordingFs wraps an afero.Fs and records every file opened for writing.
type RecordingFs struct {
	afero.Fs

	// Written holds slash separated paths in the order they were first written.
	Written []string
	seen    map[string]bool
}

// NewRecordingFs wraps fs.
func NewRecordingFs(fs afero.Fs) *RecordingFs {
	return &RecordingFs{Fs: fs, seen: map[string]bool{}}
}

// OpenFile records writes and delegates to the wrapped filesystem.
func (r *RecordingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE) != 0 {
		p := filepath.ToSlash(filepath.Clean(name))
		if !r.seen[p] {
			r.seen[p] = true
			r.Written = append(r.Written, p)
		}
	}
	return r.Fs.OpenFile(name, flag, perm)
}

// Create records the write and delegates to the wrapped filesystem.
func (r *RecordingFs) Create(name string) (afero.File, error) {
	return r.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

type failingFs struct {
	afero.Fs
	base string
}

// FailingFs wraps fs so that opening any file named base fails with
// os.ErrPermission.
func FailingFs(fs afero.Fs, base string) afero.Fs {
	return &failingFs{Fs: fs, base: base}
}

func (f *failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Base(name) == f.base {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func (f *failingFs) Create(name string) (afero.File, error) {
	return f.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

// Call is one recorded command invocation.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// RecordingRunner records commands instead of running them.
type RecordingRunner struct {
	Calls []Call

	// Err is returned from every Run call.
	Err error
}

// Run records the call and returns r.Err.
func (r *RecordingRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.Calls = append(r.Calls, Call{Dir: dir, Name: name, Args: args})
	return r.Err
}
