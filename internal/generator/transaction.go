package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// Transaction stages a batch of config writes that must land together.
// When several generated files describe one build configuration, a partial
// write is worse than no write at all.
type Transaction struct {
	staged    []stagedFile
	committed bool
}

type stagedFile struct {
	path    string
	content []byte
	mode    os.FileMode
}

// NewTransaction creates an empty transaction.
func NewTransaction() *Transaction {
	return &Transaction{}
}

// AddFile stages a file write. Nothing touches disk until Commit.
func (t *Transaction) AddFile(path string, content []byte, mode os.FileMode) {
	t.staged = append(t.staged, stagedFile{path: path, content: content, mode: mode})
}

// Commit writes all staged files. If any write fails, files written so far
// are removed before the error is returned.
func (t *Transaction) Commit() error {
	if t.committed {
		return fmt.Errorf("transaction already committed")
	}

	written := make([]string, 0, len(t.staged))

	for _, f := range t.staged {
		dir := filepath.Dir(f.path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.remove(written)
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		if err := os.WriteFile(f.path, f.content, f.mode); err != nil {
			t.remove(written)
			return fmt.Errorf("failed to write file %s: %w", f.path, err)
		}

		written = append(written, f.path)
	}

	t.committed = true
	return nil
}

// Rollback removes any staged files already on disk. Intended for use in
// defer; a no-op after a successful Commit.
func (t *Transaction) Rollback() {
	if t.committed {
		return
	}
	paths := make([]string, 0, len(t.staged))
	for _, f := range t.staged {
		if _, err := os.Stat(f.path); err == nil {
			paths = append(paths, f.path)
		}
	}
	t.remove(paths)
}

// remove deletes files best-effort, ignoring errors.
func (t *Transaction) remove(paths []string) {
	for _, p := range paths {
		os.Remove(p)
	}
}
