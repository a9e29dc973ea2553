// Package generator provides the file-system side of scaffolding:
// operations, a two-phase executor and a text/template renderer.
//
// # Operations
//
// A scaffold is planned as a list of operations before anything touches
// the disk:
//
//	ops := []generator.Operation{
//		&generator.MkdirOp{Path: root},
//		&generator.WriteFileOp{Path: filepath.Join(root, "README.md"), Content: readme, Mode: 0644},
//	}
//
// Execute validates every operation first and only then executes them in
// order. Validation never mutates the file system, so a plan that fails
// validation leaves no trace. Execution does not roll back: if a write
// fails halfway, files already written stay on disk.
//
// # Rendering
//
// Renderer wraps text/template with a small set of string helpers
// (capitalize, upper, lower, replace, quote, snakeCase).
package generator
