package extension

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rsxdalv/ttsext/internal/generator"
	"github.com/rsxdalv/ttsext/internal/output"
	"gopkg.in/yaml.v3"
)

// ErrTargetExists is returned when the extension directory is already there.
var ErrTargetExists = errors.New("target directory already exists")

// RepositoryInitializer creates version control history for a directory.
type RepositoryInitializer interface {
	Init(ctx context.Context, dir string) error
}

// Generator scaffolds extensions under Dest.
type Generator struct {
	// Dest is the parent directory of the generated root.
	Dest string

	Templates *TemplateSet
	Renderer  *generator.Renderer

	// Git initializes the repository after files are written. Nil skips
	// the step.
	Git RepositoryInitializer
}

// Options tunes a single Generate call.
type Options struct {
	DryRun bool
}

// Plan is the fully rendered scaffold, ready to execute.
type Plan struct {
	Root       string
	Operations []generator.Operation

	// Files are the paths under Root that will be written.
	Files []string

	// Skipped lists optional layout paths that will not be written.
	Skipped []string

	Warnings []string
}

// Result describes a finished Generate call.
type Result struct {
	Root      string
	Files     []string
	Skipped   []string
	Warnings  []string
	Committed bool
	DryRun    bool
}

// NewGenerator returns a generator writing under dest with templates.
func NewGenerator(dest string, templates *TemplateSet) *Generator {
	if dest == "" {
		dest = "."
	}
	return &Generator{
		Dest:      dest,
		Templates: templates,
		Renderer:  generator.NewRenderer(),
	}
}

// Root is the directory the extension is generated into.
func (g *Generator) Root(ext *Extension) string {
	return filepath.Join(g.Dest, ext.PackageName())
}

// CheckTarget fails with ErrTargetExists when the root is already present,
// whatever its type.
func (g *Generator) CheckTarget(ext *Extension) error {
	root := g.Root(ext)
	_, err := os.Lstat(root)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, root)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", root, err)
	}
	return nil
}

// Plan checks the target, renders every layout file and returns the
// operations that create them. Nothing is written.
func (g *Generator) Plan(ext *Extension) (*Plan, error) {
	if err := g.CheckTarget(ext); err != nil {
		return nil, err
	}

	root := g.Root(ext)
	plan := &Plan{Root: root}

	plan.Operations = append(plan.Operations, &generator.MkdirOp{Path: root})
	for _, dir := range Directories(ext) {
		plan.Operations = append(plan.Operations, &generator.MkdirOp{
			Path: filepath.Join(root, filepath.FromSlash(dir)),
		})
	}

	for _, f := range Layout(ext) {
		content, err := g.render(ext, f)
		if err != nil {
			if !f.Optional {
				return nil, err
			}
			plan.Skipped = append(plan.Skipped, f.Path)
			plan.Warnings = append(plan.Warnings, fmt.Sprintf("skipping %s %s: %v", f.Role, f.Path, err))
			continue
		}

		path := filepath.Join(root, filepath.FromSlash(f.Path))
		plan.Operations = append(plan.Operations, &generator.WriteFileOp{
			Path:    path,
			Content: content,
			Mode:    0644,
		})
		plan.Files = append(plan.Files, path)
	}

	return plan, nil
}

// render produces the content of one layout file.
func (g *Generator) render(ext *Extension, f File) ([]byte, error) {
	data, origin, err := g.Templates.Read(f.Template)
	if err != nil {
		return nil, err
	}
	output.Verbose(fmt.Sprintf("Template %s (%s) from %s", f.Template, f.Role, origin))

	if isYAML(f.Path) {
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("template %s is not valid YAML: %w", f.Template, err)
		}
	}

	if f.Verbatim {
		return data, nil
	}
	return g.Renderer.RenderString(f.Template, string(data), ext)
}

func isYAML(path string) bool {
	return strings.HasSuffix(path, ".yml") || strings.HasSuffix(path, ".yaml")
}

// Generate plans and writes the extension, then initializes git.
//
// Planning errors (collision, missing required template, render failure)
// leave the file system untouched. Write errors abort without rollback.
// A git failure only adds a warning.
func (g *Generator) Generate(ctx context.Context, ext *Extension, opts Options) (*Result, error) {
	plan, err := g.Plan(ext)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Root:    plan.Root,
		Files:   plan.Files,
		Skipped: plan.Skipped,
		DryRun:  opts.DryRun,
	}
	for _, w := range plan.Warnings {
		output.Warning(w)
		result.Warnings = append(result.Warnings, w)
	}

	output.Info("Creating files...")
	err = generator.Execute(ctx, plan.Operations, generator.ExecuteOptions{
		DryRun: opts.DryRun,
		OnExecute: func(op generator.Operation, dryRun bool) {
			w, ok := op.(*generator.WriteFileOp)
			if !ok {
				output.Verbose(op.Description())
				return
			}
			if dryRun {
				output.Step("[dry run] " + op.Description())
				return
			}
			output.Created(w.Path)
		},
	})
	if err != nil {
		return nil, err
	}

	if opts.DryRun || g.Git == nil {
		return result, nil
	}

	output.Info("Initializing git repository...")
	if err := g.Git.Init(ctx, plan.Root); err != nil {
		w := fmt.Sprintf("Failed to initialize git repository: %v", err)
		output.Warning(w)
		result.Warnings = append(result.Warnings, w)
		return result, nil
	}
	output.Done("Git repository initialized and initial commit created")
	result.Committed = true

	return result, nil
}
