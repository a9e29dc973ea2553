package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	createdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetWriters redirects output. A nil writer restores the process default.
func SetWriters(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout = out
	stderr = errOut
}

// Writer returns the current standard writer.
func Writer() io.Writer {
	return stdout
}

// ErrWriter returns the current error writer.
func ErrWriter() io.Writer {
	return stderr
}

// Success prints a success message with 🎉 emoji and green color.
// Use this for the final "all done" line.
//
// Example:
//
//	output.Success("Extension created successfully!")
func Success(msg string) {
	fmt.Fprintln(stdout, successStyle.Render("🎉 "+msg))
}

// Done prints a check-marked line for a completed step.
func Done(msg string) {
	fmt.Fprintln(stdout, createdStyle.Render("✓ "+msg))
}

// Created prints a check-marked line for a path that was written.
func Created(path string) {
	Done("Created " + path)
}

// Error prints an error message with ❌ emoji and red color to the error
// writer. Use this for failures that need user attention.
//
// Example:
//
//	output.Error("Extension name must be a valid Python identifier")
func Error(msg string) {
	fmt.Fprintln(stderr, errorStyle.Render("❌ Error: "+msg))
}

// Warning prints a non-fatal problem to the error writer. Generation
// continues after a warning.
func Warning(msg string) {
	fmt.Fprintln(stderr, warningStyle.Render("⚠️  Warning: "+msg))
}

// Info prints an informational message in cyan.
// Use this for status updates or explanations.
//
// Example:
//
//	output.Info("Next steps:")
func Info(msg string) {
	fmt.Fprintln(stdout, infoStyle.Render(msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("1. cd tts_webui_extension.my_tool")
func Step(msg string) {
	fmt.Fprintln(stdout, stepStyle.Render("   "+msg))
}

// Plain prints msg without styling. Usage text goes through here so it
// stays copy-pasteable.
func Plain(msg string) {
	fmt.Fprintln(stdout, msg)
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
//
// Example:
//
//	output.Verbose("Template override directory: ./templates")
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(stdout, stepStyle.Render("🔍 "+msg))
	}
}
