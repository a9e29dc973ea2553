package extension

import "path"

// Role names what a generated file is for.
type Role string

const (
	RoleSource   Role = "source"
	RoleInit     Role = "init"
	RoleMetadata Role = "metadata"
	RoleReadme   Role = "readme"
	RoleLicense  Role = "license"
	RoleIgnore   Role = "ignore"
	RoleWorkflow Role = "workflow"
)

// File is one entry of the target layout.
type File struct {
	Role Role

	// Path is slash-separated and relative to the extension root.
	Path string

	// Template is the resource name looked up in the TemplateSet.
	Template string

	// Verbatim files are copied as-is instead of rendered.
	Verbatim bool

	// Optional files are skipped with a warning when their template is
	// missing or malformed. A missing required template is fatal.
	Optional bool
}

// SourceDir is the directory holding the extension's Python module.
func SourceDir(ext *Extension) string {
	return path.Join(Namespace, ext.Identifier)
}

// WorkflowDir holds the CI workflow.
const WorkflowDir = ".github/workflows"

// Directories lists the directories created under the root, in creation
// order. The workflow directory is created even when the workflow itself
// is skipped.
func Directories(ext *Extension) []string {
	return []string{
		Namespace,
		SourceDir(ext),
		".github",
		WorkflowDir,
	}
}

// Layout returns the fixed file table for ext.
func Layout(ext *Extension) []File {
	src := SourceDir(ext)
	return []File{
		{Role: RoleSource, Path: path.Join(src, "main.py"), Template: "main.py.tmpl"},
		{Role: RoleInit, Path: path.Join(src, "__init__.py"), Template: "__init__.py.tmpl"},
		{Role: RoleMetadata, Path: "pyproject.toml", Template: "pyproject.toml.tmpl"},
		{Role: RoleReadme, Path: "README.md", Template: "README.md.tmpl"},
		{Role: RoleLicense, Path: "LICENSE", Template: "LICENSE"},
		{Role: RoleIgnore, Path: ".gitignore", Template: ".gitignore", Verbatim: true},
		{Role: RoleWorkflow, Path: path.Join(WorkflowDir, "build_wheel.yml"), Template: ".github/workflows/build_wheel.yml", Verbatim: true, Optional: true},
	}
}
