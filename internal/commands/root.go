package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rsxdalv/ttsext"
	"github.com/rsxdalv/ttsext/internal/config"
	"github.com/rsxdalv/ttsext/internal/exec"
	"github.com/rsxdalv/ttsext/internal/extension"
	"github.com/rsxdalv/ttsext/internal/input"
	"github.com/rsxdalv/ttsext/internal/output"
	"github.com/rsxdalv/ttsext/internal/vcs"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrUsage is returned when the extension name is missing. Usage text has
// already been printed when it is returned.
var ErrUsage = errors.New("missing extension name")

const toolName = "tts-webui-extension"

// RootCmd creates the generator command.
func RootCmd() *cobra.Command {
	var (
		dryRun      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   toolName + " <extension-name> [github-username]",
		Short: "Generate a TTS Generation WebUI extension project",
		Long: `Creates a ready-to-publish TTS Generation WebUI extension with:
• A gradio UI stub and the extension metadata function
• pyproject.toml packaging for the tts_webui_extension namespace
• README, MIT LICENSE and .gitignore
• A GitHub Actions workflow that builds a wheel
• A git repository with an initial commit

The GitHub username is only used to build URLs in the generated metadata.`,
		Example: `  ` + toolName + ` my_awesome_extension rsxdalv
  ` + toolName + ` voice_clone --dir ~/src --no-git`,
		Version:       ttsext.Version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printUsage()
				return ErrUsage
			}

			name := args[0]
			if err := extension.ValidateIdentifier(name); err != nil {
				return err
			}

			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			output.SetVerbose(cfg.Verbose)
			if cfg.File != "" {
				output.Verbose(fmt.Sprintf("Using config file: %s", cfg.File))
			}

			attribution := cfg.Attribution
			if len(args) > 1 && args[1] != "" {
				attribution = args[1]
			}
			if attribution == "" && interactive {
				attribution = input.Prompt("GitHub username", extension.DefaultAttribution)
			}

			ext, err := extension.New(name, attribution)
			if err != nil {
				return err
			}

			return runGenerate(cmd.Context(), ext, cfg, dryRun)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be created without writing anything")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the GitHub username when it is not given")

	return cmd
}

func runGenerate(ctx context.Context, ext *extension.Extension, cfg *config.Config, dryRun bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	gen := extension.NewGenerator(cfg.Dir, extension.NewTemplateSet(cfg.Templates, cfg.BuiltinTemplates))
	if cfg.Templates != "" {
		output.Verbose(fmt.Sprintf("Template override directory: %s", cfg.Templates))
	}

	// Fail on a collision before printing the banner.
	if err := gen.CheckTarget(ext); err != nil {
		return err
	}

	output.Info(fmt.Sprintf("Creating extension: %s", ext.Identifier))
	output.Info(fmt.Sprintf("Package name: %s", ext.PackageName()))
	output.Info(fmt.Sprintf("Directory: %s", gen.Root(ext)))
	output.Info(fmt.Sprintf("GitHub username: %s", ext.Attribution))

	var stdout, stderr *exec.PrefixWriter
	if cfg.Git && !dryRun {
		if useSpinner(cfg) {
			gen.Git = vcs.New(exec.NewExecutor(nil), true)
		} else {
			// Indent git's own output under the "Initializing" line.
			stdout = exec.NewPrefixWriter(output.Writer(), "   │ ")
			stderr = exec.NewPrefixWriter(output.ErrWriter(), "   │ ")
			gen.Git = vcs.New(exec.NewExecutor(&exec.Options{Stdout: stdout, Stderr: stderr}), false)
		}
	}

	result, err := gen.Generate(ctx, ext, extension.Options{DryRun: dryRun})
	if stdout != nil {
		_ = stdout.Flush()
		_ = stderr.Flush()
	}
	if err != nil {
		return err
	}

	printSummary(ext, result)
	return nil
}

// useSpinner shows git progress as spinners on an interactive terminal
// unless verbose output was requested.
func useSpinner(cfg *config.Config) bool {
	return !cfg.Verbose && term.IsTerminal(int(os.Stdout.Fd()))
}

func printUsage() {
	output.Plain(fmt.Sprintf("Usage: %s <extension-name> [github-username]", toolName))
	output.Plain(fmt.Sprintf("Example: %s my_awesome_extension rsxdalv", toolName))
}

func printSummary(ext *extension.Extension, result *extension.Result) {
	if result.DryRun {
		output.Info("Dry run: nothing was written.")
		return
	}

	fmt.Fprintln(output.Writer())
	output.Success("Extension created successfully!")
	output.Info("Next steps:")
	output.Step(fmt.Sprintf("1. cd %s", result.Root))
	output.Step("2. Edit the files to implement your extension functionality")
	output.Step("3. Update the metadata in main.py (author, description, etc.)")
	output.Step("4. Add dependencies to pyproject.toml if needed")
	output.Step(fmt.Sprintf("5. Test your extension by running: cd %s && python main.py", extension.SourceDir(ext)))
	output.Step("6. Create a GitHub repository and push your code")
	output.Step("7. Update the requirements URL in main.py to point to your repository")
}

// ReportError prints err for the user. Usage errors were already reported
// when the usage text was printed.
func ReportError(err error) {
	if err == nil || errors.Is(err, ErrUsage) {
		return
	}
	output.Error(err.Error())
}
