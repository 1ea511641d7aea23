package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a file system operation that can be validated and
// executed.
//
// Validate checks if the operation would succeed without executing it.
// It may have idempotent side effects (creating parent directories).
// force=true skips conflict checks against existing files.
//
// Execute performs the actual operation and should only be called after
// Validate succeeds.
//
// Description returns a human-readable summary for terminal output.
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp writes one rendered config file.
//
// Validation creates missing parent directories and, unless force is set,
// refuses to clobber an existing file; conflict strategy is decided by the
// caller before the operation is built. Execution overwrites the target in
// full: no append, no merge with prior contents.
type WriteFileOp struct {
	Path    string      // destination path
	Content []byte      // full file content (may be empty, must not be nil)
	Mode    fs.FileMode // file permissions, e.g. 0644
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	dir := filepath.Dir(op.Path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	if !force {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("file already exists: %s", op.Path)
		}
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Write %s (%d bytes)", op.Path, len(op.Content))
}
