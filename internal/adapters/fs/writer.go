package fs

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IntermediateFileWriter = (*Writer)(nil)

// Writer materializes intermediate files, leaving unchanged files untouched so their
// modification times stay stable across plans.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteIfChanged writes content to path unless the file already holds exactly that content.
func (w *Writer) WriteIfChanged(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	switch {
	case err == nil && bytes.Equal(existing, content):
		return false, nil
	case err != nil && !errors.Is(err, iofs.ErrNotExist):
		return false, zerr.With(zerr.Wrap(err, domain.ErrResponseFileWriteFailed.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrResponseFileWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is controlled by caller
	if err := os.WriteFile(path, content, domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrResponseFileWriteFailed.Error()), "path", path)
	}
	return true, nil
}
