package generator_test

import (
	"strings"
	"testing"

	"github.com/wrenkit/wren/internal/generator"
)

func TestDiff_IdenticalFiles(t *testing.T) {
	dg := generator.NewDiffGenerator()
	content := []byte("filter = src/.*\nexclude = vendor/.*\n")

	if diff := dg.Generate("gcovr.cfg", "gcovr.cfg", content, content); diff != "" {
		t.Errorf("expected empty diff for identical content, got: %s", diff)
	}
}

func TestDiff_ChangedLine(t *testing.T) {
	dg := generator.NewDiffGenerator()
	old := []byte("fail-under-line = 80\nfilter = src/.*\n")
	newer := []byte("fail-under-line = 85\nfilter = src/.*\n")

	diff := dg.Generate("gcovr.cfg", "gcovr.cfg", old, newer)

	if !strings.Contains(diff, "--- gcovr.cfg") || !strings.Contains(diff, "+++ gcovr.cfg") {
		t.Errorf("diff missing header:\n%s", diff)
	}
	if !strings.Contains(diff, "- fail-under-line = 80") {
		t.Errorf("diff missing removed line:\n%s", diff)
	}
	if !strings.Contains(diff, "+ fail-under-line = 85") {
		t.Errorf("diff missing added line:\n%s", diff)
	}
	if !strings.Contains(diff, "@@") {
		t.Errorf("diff missing hunk header:\n%s", diff)
	}
}

func TestDiff_AddedLines(t *testing.T) {
	dg := generator.NewDiffGenerator()
	old := []byte("filter = src/.*\n")
	newer := []byte("filter = src/.*\nexclude = vendor/.*\nexclude = test/.*\n")

	diff := dg.Generate("gcovr.cfg", "gcovr.cfg", old, newer)

	if !strings.Contains(diff, "+ exclude = vendor/.*") {
		t.Errorf("diff missing first added line:\n%s", diff)
	}
	if !strings.Contains(diff, "+ exclude = test/.*") {
		t.Errorf("diff missing second added line:\n%s", diff)
	}
}

func TestDiff_ContextIsLimited(t *testing.T) {
	dg := generator.NewDiffGenerator()

	var oldLines, newLines []string
	for i := 0; i < 30; i++ {
		oldLines = append(oldLines, "unchanged")
		newLines = append(newLines, "unchanged")
	}
	oldLines[15] = "old value"
	newLines[15] = "new value"

	diff := dg.Generate("a", "b",
		[]byte(strings.Join(oldLines, "\n")+"\n"),
		[]byte(strings.Join(newLines, "\n")+"\n"))

	// 3 lines of context either side plus the change itself.
	if got := strings.Count(diff, "unchanged"); got > 6 {
		t.Errorf("expected at most 6 context lines, got %d:\n%s", got, diff)
	}
}

func TestDiff_BinaryContent(t *testing.T) {
	dg := generator.NewDiffGenerator()
	diff := dg.Generate("a", "b", []byte{0x00, 0x01}, []byte{0x00, 0x02})

	if !strings.Contains(diff, "Binary files differ") {
		t.Errorf("expected binary notice, got: %s", diff)
	}
}
