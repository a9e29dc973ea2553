// Package config loads generator settings from flags, the environment and
// an optional config file.
//
// Precedence, highest first: command-line flags, TTS_WEBUI_EXTENSION_*
// environment variables, .tts-webui-extension.yaml (working directory,
// then $HOME), built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g.
	// TTS_WEBUI_EXTENSION_ATTRIBUTION.
	EnvPrefix = "TTS_WEBUI_EXTENSION"

	// FileName is the config file name without extension.
	FileName = ".tts-webui-extension"

	// TemplatesDirName is looked up next to the executable when no
	// templates directory is configured.
	TemplatesDirName = "templates"
)

// Config holds resolved settings for one invocation.
type Config struct {
	Attribution      string
	Dir              string
	Templates        string
	BuiltinTemplates bool
	Git              bool
	Verbose          bool

	// File is the config file that was read, empty if none.
	File string
}

// RegisterFlags adds the flags Load understands to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Config file (default .tts-webui-extension.yaml in . or $HOME)")
	flags.StringP("dir", "C", ".", "Directory to create the extension in")
	flags.String("templates", "", "Template override directory (default: templates/ next to the executable)")
	flags.Bool("no-builtin-templates", false, "Only use templates from the override directory")
	flags.Bool("no-git", false, "Skip git repository initialization")
	flags.BoolP("verbose", "v", false, "Enable verbose output for debugging")
}

// Load resolves the configuration. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("attribution", "")
	v.SetDefault("dir", ".")
	v.SetDefault("templates", "")
	v.SetDefault("builtin_templates", true)
	v.SetDefault("git", true)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	configFile := ""
	if flags != nil {
		for key, name := range map[string]string{"dir": "dir", "templates": "templates", "verbose": "verbose"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
		configFile, _ = flags.GetString("config")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Attribution:      v.GetString("attribution"),
		Dir:              v.GetString("dir"),
		Templates:        v.GetString("templates"),
		BuiltinTemplates: v.GetBool("builtin_templates"),
		Git:              v.GetBool("git"),
		Verbose:          v.GetBool("verbose"),
		File:             v.ConfigFileUsed(),
	}

	if flags != nil {
		if noGit, _ := flags.GetBool("no-git"); noGit {
			cfg.Git = false
		}
		if noBuiltin, _ := flags.GetBool("no-builtin-templates"); noBuiltin {
			cfg.BuiltinTemplates = false
		}
	}

	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Templates == "" {
		cfg.Templates = DefaultTemplatesDir()
	}

	return cfg, nil
}

// DefaultTemplatesDir returns templates/ next to the running executable,
// or "" if there is no such directory.
func DefaultTemplatesDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	dir := filepath.Join(filepath.Dir(exe), TemplatesDirName)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return ""
}
