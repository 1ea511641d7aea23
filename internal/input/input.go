// Package input provides interactive terminal input utilities used by the
// wren CLI when prompts are needed.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is
// returned.
//
// Example:
//
//	prefix := input.Prompt("Mock prefix", "mock_")
//	// Displays: Mock prefix (mock_): _
func Prompt(message, defaultValue string) string {
	reader := bufio.NewReader(os.Stdin)

	if defaultValue != "" {
		fmt.Print(promptStyle.Render(message) + " " +
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue)) + ": ")
	} else {
		fmt.Print(promptStyle.Render(message) + ": ")
	}

	in, err := reader.ReadString('\n')
	if err != nil {
		return defaultValue
	}

	in = strings.TrimSpace(in)
	if in == "" {
		return defaultValue
	}
	return in
}

// Confirm asks the user a yes/no question. Returns true if the user
// answers yes (y/Y/yes/YES). Pressing Enter returns defaultYes.
//
// Example:
//
//	if input.Confirm("wren.yml exists, overwrite?", false) {
//	    // replace it
//	}
func Confirm(message string, defaultYes bool) bool {
	reader := bufio.NewReader(os.Stdin)

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Print(promptStyle.Render(message) + " " + hintStyle.Render(hint) + ": ")

	in, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}

	in = strings.TrimSpace(strings.ToLower(in))
	if in == "" {
		return defaultYes
	}
	return in == "y" || in == "yes"
}
