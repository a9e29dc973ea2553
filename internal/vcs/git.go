// Package vcs initializes a git repository over a freshly generated
// extension.
package vcs

import (
	"context"
	"fmt"

	"github.com/rsxdalv/ttsext/internal/exec"
)

// InitialCommitMessage is the message of the first commit.
const InitialCommitMessage = "Initial commit: Extension template"

// Git runs the git executable through an exec.Executor.
type Git struct {
	executor *exec.Executor
	spinner  bool
}

// New returns a Git that runs commands with executor. With spinner set,
// each step is shown as a spinner line instead of git's own output.
func New(executor *exec.Executor, spinner bool) *Git {
	return &Git{executor: executor, spinner: spinner}
}

type step struct {
	message string
	args    []string
}

// Init runs git init, git add . and the initial commit inside dir. It
// stops at the first failing step. Callers treat the error as a warning:
// the generated files are already on disk.
func (g *Git) Init(ctx context.Context, dir string) error {
	steps := []step{
		{message: "Initializing git repository", args: []string{"init"}},
		{message: "Staging files", args: []string{"add", "."}},
		{message: "Creating initial commit", args: []string{"commit", "-m", InitialCommitMessage}},
	}

	for _, s := range steps {
		cmd := g.executor.Command("git", s.args...).In(dir)
		if g.spinner {
			cmd = cmd.WithSpinner(s.message)
		}
		if err := cmd.Run(ctx); err != nil {
			return fmt.Errorf("git %s: %w", s.args[0], err)
		}
	}
	return nil
}
