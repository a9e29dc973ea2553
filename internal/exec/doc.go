// Package exec runs external commands for the generator.
//
// An Executor decides where command output goes; a Command is one
// invocation built from it:
//
//	executor := exec.NewExecutor(nil)
//	err := executor.Command("git", "init").In(root).Run(ctx)
//
// With WithSpinner the command's output is replaced by a bubbletea spinner
// line, and the last line of its stderr is kept for the error.
//
// Commands are started through a replaceable constructor so tests can swap
// in a helper process instead of the real binary.
package exec
