package generator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wrenkit/wren/internal/generator"
)

func TestTransaction_CommitWritesAllFiles(t *testing.T) {
	tmpDir := t.TempDir()
	cmockPath := filepath.Join(tmpDir, "build", "cmock.yml")
	gcovrPath := filepath.Join(tmpDir, "build", "gcovr.cfg")

	tx := generator.NewTransaction()
	tx.AddFile(cmockPath, []byte(":cmock:\n"), 0644)
	tx.AddFile(gcovrPath, []byte("filter = src/.*\n"), 0644)

	if err := tx.Commit(); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	for _, path := range []string{cmockPath, gcovrPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("file not written: %s", path)
		}
	}
}

func TestTransaction_PartialFailureRollsBack(t *testing.T) {
	tmpDir := t.TempDir()
	okPath := filepath.Join(tmpDir, "cmock.yml")
	badPath := filepath.Join(tmpDir, "gcovr.cfg")

	// A directory at the target path makes the second write fail.
	if err := os.Mkdir(badPath, 0755); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	tx := generator.NewTransaction()
	tx.AddFile(okPath, []byte(":cmock:\n"), 0644)
	tx.AddFile(badPath, []byte("filter = src/.*\n"), 0644)

	if err := tx.Commit(); err == nil {
		t.Fatal("expected commit to fail")
	}

	// The successfully written file must be removed again.
	if _, err := os.Stat(okPath); !os.IsNotExist(err) {
		t.Error("partial write was not rolled back")
	}
}

func TestTransaction_DoubleCommit(t *testing.T) {
	tx := generator.NewTransaction()
	tx.AddFile(filepath.Join(t.TempDir(), "cmock.yml"), []byte(":cmock:\n"), 0644)

	if err := tx.Commit(); err != nil {
		t.Fatalf("first commit failed: %v", err)
	}
	if err := tx.Commit(); err == nil {
		t.Error("expected error on second commit")
	}
}

func TestTransaction_RollbackBeforeCommit(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cmock.yml")

	// Simulate a file that already landed before the transaction aborts.
	if err := os.WriteFile(path, []byte(":cmock:\n"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	tx := generator.NewTransaction()
	tx.AddFile(path, []byte(":cmock:\n"), 0644)
	tx.Rollback()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("rollback did not remove staged file")
	}
}

func TestTransaction_RollbackAfterCommitIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gcovr.cfg")

	tx := generator.NewTransaction()
	tx.AddFile(path, []byte("filter = src/.*\n"), 0644)

	if err := tx.Commit(); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	tx.Rollback()

	if _, err := os.Stat(path); err != nil {
		t.Error("rollback after commit removed the file")
	}
}
