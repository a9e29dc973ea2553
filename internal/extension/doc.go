// Package extension scaffolds a TTS Generation WebUI extension project.
//
// An extension is identified by a Python identifier. Everything else about
// the generated tree is derived from it:
//
//	ext, err := extension.New("my_tool", "")
//	// ext.PackageName()   == "tts_webui_extension.my_tool"
//	// ext.DisplayName()   == "My tool"
//	// ext.RepositoryURL() == "https://github.com/username_missing/tts_webui_extension.my_tool"
//
// A Generator turns an Extension into generator operations and runs them:
//
//	gen := extension.NewGenerator(".", extension.NewTemplateSet("templates", true))
//	gen.Git = vcs.New(exec.NewExecutor(nil), false)
//	result, err := gen.Generate(ctx, ext, extension.Options{})
//
// # Layout
//
//	tts_webui_extension.<name>/
//	├── tts_webui_extension/<name>/main.py
//	├── tts_webui_extension/<name>/__init__.py
//	├── pyproject.toml
//	├── README.md
//	├── LICENSE
//	├── .gitignore
//	└── .github/workflows/build_wheel.yml   (only if its template exists)
//
// # Failure modes
//
// Invalid names (ErrInvalidIdentifier), an existing target directory
// (ErrTargetExists) and missing required templates (ErrTemplateNotFound)
// are all detected while planning, before anything is written. A failed
// write aborts without rollback. A failed git initialization is reported
// as a warning.
package extension
