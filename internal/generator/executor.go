package generator

import (
	"context"
	"fmt"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun bool

	// OnExecute is called after each operation succeeds, or for every
	// operation in a dry run. May be nil.
	OnExecute func(op Operation, dryRun bool)
}

// Execute runs operations with validation. All operations are validated
// before the first one executes; execution stops at the first failure.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	// Phase 1: Validate all operations
	for _, op := range ops {
		if err := op.Validate(ctx); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	// Phase 2: Execute or report
	for _, op := range ops {
		if !opts.DryRun {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("execution cancelled: %w", err)
			}
			if err := op.Execute(ctx); err != nil {
				return fmt.Errorf("execution failed: %w", err)
			}
		}
		if opts.OnExecute != nil {
			opts.OnExecute(op, opts.DryRun)
		}
	}

	return nil
}
