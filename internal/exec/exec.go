package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Executor starts external commands and decides where their output goes.
type Executor struct {
	stdout io.Writer
	stderr io.Writer

	// newCmd builds the process; tests swap in a helper process.
	newCmd func(name string, args ...string) *exec.Cmd
}

// Options configures command output. Nil writers mean the process's own
// stdout and stderr.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecutor returns an executor writing to the writers in opts.
func NewExecutor(opts *Options) *Executor {
	e := &Executor{stdout: os.Stdout, stderr: os.Stderr, newCmd: exec.Command}
	if opts == nil {
		return e
	}
	if opts.Stdout != nil {
		e.stdout = opts.Stdout
	}
	if opts.Stderr != nil {
		e.stderr = opts.Stderr
	}
	return e
}

// WithCommandFunc returns a copy of e that builds commands with fn.
func (e *Executor) WithCommandFunc(fn func(name string, args ...string) *exec.Cmd) *Executor {
	clone := *e
	clone.newCmd = fn
	return &clone
}

// Command starts building an invocation of name.
func (e *Executor) Command(name string, args ...string) *Command {
	return &Command{executor: e, name: name, args: args}
}

// Command is a single invocation built on an Executor.
type Command struct {
	executor *Executor
	name     string
	args     []string
	dir      string
	spinner  string
}

// In sets the working directory.
func (c *Command) In(dir string) *Command {
	c.dir = dir
	return c
}

// WithSpinner shows message next to a spinner while the command runs. The
// command's output is not shown; the last line of its stderr is added to
// the error when it fails.
func (c *Command) WithSpinner(message string) *Command {
	c.spinner = message
	return c
}

// Run executes the command and waits for it. There is no timeout; only
// ctx cancellation stops a running command.
func (c *Command) Run(ctx context.Context) error {
	if c.spinner != "" {
		return c.runWithSpinner(ctx)
	}
	return c.wait(ctx, c.executor.stdout, c.executor.stderr)
}

func (c *Command) wait(ctx context.Context, stdout, stderr io.Writer) error {
	cmd := c.executor.newCmd(c.name, c.args...)
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		if isCommandNotFound(err) {
			return notFound(err, c.name)
		}
		return fmt.Errorf("failed to start %s: %w", c.name, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-errCh
		return fmt.Errorf("%s cancelled: %w", c.name, ctx.Err())
	case err := <-errCh:
		if err == nil {
			return nil
		}
		if isCommandNotFound(err) {
			return notFound(err, c.name)
		}
		return fmt.Errorf("%s failed: %w", c.name, err)
	}
}

func (c *Command) runWithSpinner(ctx context.Context) error {
	var diagnostics bytes.Buffer

	done := make(chan error, 1)
	go func() {
		done <- c.wait(ctx, io.Discard, &diagnostics)
	}()

	p := tea.NewProgram(newSpinnerModel(c.spinner),
		tea.WithOutput(c.executor.stderr),
		tea.WithInput(nil))

	finished := make(chan struct{})
	go func() {
		// Rendering errors never change the command's result.
		_, _ = p.Run()
		close(finished)
	}()

	err := <-done
	p.Send(spinnerDoneMsg{err: err})

	select {
	case <-finished:
	case <-time.After(250 * time.Millisecond):
		p.Quit()
	}

	if err != nil {
		if line := lastLine(diagnostics.String()); line != "" {
			return fmt.Errorf("%w: %s", err, line)
		}
	}
	return err
}

// lastLine returns the last non-blank line of s.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{spinner: s, message: message}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	switch {
	case !m.done:
		return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
	case m.err != nil:
		return fmt.Sprintf("❌ %s\n", m.message)
	default:
		return fmt.Sprintf("✓ %s\n", m.message)
	}
}

func isCommandNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) ||
		strings.Contains(err.Error(), "executable file not found") ||
		strings.Contains(err.Error(), "command not found")
}

func notFound(err error, name string) error {
	return fmt.Errorf("%w\n💡 Command '%s' not found. Please install it and try again", err, name)
}
