// Package codegen renders NestJS clean-architecture TypeScript modules from
// parsed Prisma models.
package codegen

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Writer persists generated modules through an afero filesystem, creating
// parent directories as needed. Existing files are always overwritten;
// generated output is the source of truth at its destination path.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a writer over the given filesystem. A nil fs means the OS
// filesystem.
func NewWriter(fs afero.Fs) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{fs: fs}
}

// Write writes one generated module to path.
func (w *Writer) Write(path string, contents string) error {
	if err := w.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := afero.WriteFile(w.fs, path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
