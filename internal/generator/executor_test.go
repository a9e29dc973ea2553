package generator_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rsxdalv/ttsext/internal/generator"
)

func TestExecute_DryRun(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "pkg")

	ops := []generator.Operation{
		&generator.MkdirOp{Path: root},
		&generator.WriteFileOp{
			Path:    filepath.Join(root, "test.txt"),
			Content: []byte("hello"),
			Mode:    0644,
		},
	}

	var reported []string
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{
		DryRun: true,
		OnExecute: func(op generator.Operation, dryRun bool) {
			if !dryRun {
				t.Error("OnExecute should see dryRun=true")
			}
			reported = append(reported, op.Description())
		},
	})
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Error("dry run created directory")
	}
	if len(reported) != 2 {
		t.Errorf("expected 2 reported operations, got %d", len(reported))
	}
}

func TestExecute_RealRun(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []generator.Operation{
		&generator.WriteFileOp{
			Path:    filepath.Join(tmpDir, "nested", "dir", "test.txt"),
			Content: []byte("hello"),
			Mode:    0644,
		},
	}

	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{}); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "nested", "dir", "test.txt"))
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("wrong content: got %q, want %q", content, "hello")
	}
}

func TestExecute_ValidationFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "existing.txt")
	if err := os.WriteFile(existing, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	first := filepath.Join(tmpDir, "first.txt")
	ops := []generator.Operation{
		&generator.WriteFileOp{Path: first, Content: []byte("new"), Mode: 0644},
		&generator.WriteFileOp{Path: existing, Content: []byte("new"), Mode: 0644},
	}

	err := generator.Execute(ctx, ops, generator.ExecuteOptions{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, generator.ErrPathExists) {
		t.Errorf("expected ErrPathExists, got %v", err)
	}

	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Error("first operation executed although validation of a later one failed")
	}
	content, _ := os.ReadFile(existing)
	if string(content) != "original" {
		t.Error("existing file was modified")
	}
}

func TestExecute_NoRollbackOnExecutionFailure(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	written := filepath.Join(tmpDir, "written.txt")
	ops := []generator.Operation{
		&generator.WriteFileOp{Path: written, Content: []byte("a"), Mode: 0644},
		failingOp{},
	}

	err := generator.Execute(ctx, ops, generator.ExecuteOptions{})
	if err == nil {
		t.Fatal("expected execution error")
	}

	if _, err := os.Stat(written); err != nil {
		t.Error("files written before the failure should stay on disk")
	}
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "x.txt")
	ops := []generator.Operation{
		&generator.WriteFileOp{Path: path, Content: []byte("a"), Mode: 0644},
	}

	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{}); err == nil {
		t.Fatal("expected cancellation error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("cancelled execution wrote a file")
	}
}

type failingOp struct{}

func (failingOp) Validate(ctx context.Context) error { return nil }
func (failingOp) Execute(ctx context.Context) error  { return errors.New("disk full") }
func (failingOp) Description() string                { return "fail" }
