package generator

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	diffHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hunkStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	addedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22"))
	removedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52"))
)

// diffContextLines is the number of unchanged lines shown around each
// change.
const diffContextLines = 3

// diffMaxLines caps the LCS table. Config files are a few dozen lines;
// anything past this is not worth diffing interactively.
const diffMaxLines = 2000

// DiffGenerator produces colored unified diffs between an existing config
// file and its regenerated replacement.
type DiffGenerator struct{}

// NewDiffGenerator creates a diff generator.
func NewDiffGenerator() *DiffGenerator {
	return &DiffGenerator{}
}

// Generate returns a styled unified diff, or the empty string when the
// contents are identical.
func (dg *DiffGenerator) Generate(oldPath, newPath string, old, newer []byte) string {
	if bytes.Equal(old, newer) {
		return ""
	}
	if bytes.ContainsRune(old, 0) || bytes.ContainsRune(newer, 0) {
		return "Binary files differ\n"
	}

	oldLines := splitLines(string(old))
	newLines := splitLines(string(newer))

	if len(oldLines) > diffMaxLines || len(newLines) > diffMaxLines {
		return fmt.Sprintf("Files too large for diff (%d and %d lines)\n", len(oldLines), len(newLines))
	}

	script := editScript(oldLines, newLines)
	hunks := buildHunks(script)
	if len(hunks) == 0 {
		return ""
	}

	width := terminalWidth()

	var b strings.Builder
	b.WriteString(diffHeaderStyle.Render("--- "+oldPath) + "\n")
	b.WriteString(diffHeaderStyle.Render("+++ "+newPath) + "\n")
	for _, h := range hunks {
		b.WriteString(formatHunk(h, width))
	}
	return b.String()
}

type editKind int

const (
	editKeep editKind = iota
	editAdd
	editDel
)

type editLine struct {
	kind editKind
	oldN int // 1-based line number in old file, 0 when added
	newN int // 1-based line number in new file, 0 when removed
	text string
}

type diffHunk struct {
	oldStart, oldCount int
	newStart, newCount int
	lines              []editLine
}

// editScript computes a line-level edit script via a plain LCS table.
func editScript(oldLines, newLines []string) []editLine {
	n, m := len(oldLines), len(newLines)

	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var script []editLine
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case oldLines[i] == newLines[j]:
			script = append(script, editLine{kind: editKeep, oldN: i + 1, newN: j + 1, text: oldLines[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			script = append(script, editLine{kind: editDel, oldN: i + 1, text: oldLines[i]})
			i++
		default:
			script = append(script, editLine{kind: editAdd, newN: j + 1, text: newLines[j]})
			j++
		}
	}
	for ; i < n; i++ {
		script = append(script, editLine{kind: editDel, oldN: i + 1, text: oldLines[i]})
	}
	for ; j < m; j++ {
		script = append(script, editLine{kind: editAdd, newN: j + 1, text: newLines[j]})
	}
	return script
}

// buildHunks groups changed lines with surrounding context, merging hunks
// whose context regions touch.
func buildHunks(script []editLine) []diffHunk {
	changed := false
	for _, l := range script {
		if l.kind != editKeep {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	// Mark which script indices belong in a hunk.
	include := make([]bool, len(script))
	for idx, l := range script {
		if l.kind == editKeep {
			continue
		}
		lo := idx - diffContextLines
		if lo < 0 {
			lo = 0
		}
		hi := idx + diffContextLines
		if hi > len(script)-1 {
			hi = len(script) - 1
		}
		for k := lo; k <= hi; k++ {
			include[k] = true
		}
	}

	var hunks []diffHunk
	idx := 0
	for idx < len(script) {
		if !include[idx] {
			idx++
			continue
		}
		start := idx
		for idx < len(script) && include[idx] {
			idx++
		}
		hunks = append(hunks, makeHunk(script[start:idx]))
	}
	return hunks
}

func makeHunk(lines []editLine) diffHunk {
	h := diffHunk{lines: lines}
	for _, l := range lines {
		if l.oldN > 0 {
			if h.oldStart == 0 {
				h.oldStart = l.oldN
			}
			h.oldCount++
		}
		if l.newN > 0 {
			if h.newStart == 0 {
				h.newStart = l.newN
			}
			h.newCount++
		}
	}
	return h
}

func formatHunk(h diffHunk, width int) string {
	var b strings.Builder
	b.WriteString(hunkStyle.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.oldStart, h.oldCount, h.newStart, h.newCount)) + "\n")
	for _, l := range h.lines {
		switch l.kind {
		case editDel:
			b.WriteString(removedStyle.Render(clip("- "+l.text, width)) + "\n")
		case editAdd:
			b.WriteString(addedStyle.Render(clip("+ "+l.text, width)) + "\n")
		default:
			b.WriteString(clip("  "+l.text, width) + "\n")
		}
	}
	return b.String()
}

// clip truncates a line to the terminal width so background styling does
// not wrap.
func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
