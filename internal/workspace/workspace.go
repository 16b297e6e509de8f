// Package workspace writes rendered files to a filesystem.
package workspace

import (
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/gdscaffold/cli/internal/errors"
	"github.com/gdscaffold/cli/internal/output"
	"github.com/gdscaffold/cli/internal/templates"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer creates directories and files. Existing files are overwritten.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a Writer backed by fs.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// CreateDirAll creates path and any missing parents.
func (w *Writer) CreateDirAll(path string) error {
	if err := w.fs.MkdirAll(path, dirPerm); err != nil {
		return oerrors.NewFilesystemError("creating directory", path, err)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories as needed.
func (w *Writer) WriteFile(path string, data []byte) error {
	if err := w.CreateDirAll(filepath.Dir(path)); err != nil {
		return err
	}
	if err := afero.WriteFile(w.fs, path, data, filePerm); err != nil {
		return oerrors.NewFilesystemError("writing file", path, err)
	}
	return nil
}

// WriteTree writes files below dir in order and returns their target paths.
// The first failure stops the write; files already written are left in place.
func (w *Writer) WriteTree(dir string, files []templates.TemplateFile) ([]string, error) {
	if err := w.CreateDirAll(dir); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		target := filepath.Join(dir, filepath.FromSlash(f.TargetPath))
		if err := w.WriteFile(target, f.Content); err != nil {
			return written, err
		}
		output.Debug("created file", "path", target)
		written = append(written, f.TargetPath)
	}
	return written, nil
}
