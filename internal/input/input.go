package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	in  io.Reader = os.Stdin
	out io.Writer = os.Stdout
)

// SetIO replaces the prompt's reader and writer. Nil restores the default.
func SetIO(r io.Reader, w io.Writer) {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	in = r
	out = w
}

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, or input cannot be
// read, the default is returned.
//
// Example:
//
//	user := input.Prompt("GitHub username", "username_missing")
//	// Displays: GitHub username (username_missing): _
func Prompt(message, defaultValue string) string {
	reader := bufio.NewReader(in)

	if defaultValue != "" {
		fmt.Fprint(out, promptStyle.Render(message)+" "+
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue))+": ")
	} else {
		fmt.Fprint(out, promptStyle.Render(message)+": ")
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return defaultValue
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}

	return line
}
