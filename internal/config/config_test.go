package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

// inTempDir keeps a stray config file in the real working directory or
// home from leaking into a test.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Attribution)
	assert.Equal(t, ".", cfg.Dir)
	assert.True(t, cfg.BuiltinTemplates)
	assert.True(t, cfg.Git)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.File)
}

func TestLoad_NilFlags(t *testing.T) {
	inTempDir(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Dir)
	assert.True(t, cfg.Git)
}

func TestLoad_Flags(t *testing.T) {
	dir := inTempDir(t)
	templates := filepath.Join(dir, "tpl")

	cfg, err := Load(newFlags(t,
		"--dir", "out",
		"--templates", templates,
		"--no-git",
		"--no-builtin-templates",
		"-v",
	))
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Dir)
	assert.Equal(t, templates, cfg.Templates)
	assert.False(t, cfg.Git)
	assert.False(t, cfg.BuiltinTemplates)
	assert.True(t, cfg.Verbose)
}

func TestLoad_Environment(t *testing.T) {
	inTempDir(t)
	t.Setenv("TTS_WEBUI_EXTENSION_ATTRIBUTION", "rsxdalv")
	t.Setenv("TTS_WEBUI_EXTENSION_GIT", "false")
	t.Setenv("TTS_WEBUI_EXTENSION_DIR", "from-env")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "rsxdalv", cfg.Attribution)
	assert.False(t, cfg.Git)
	assert.Equal(t, "from-env", cfg.Dir)

	// Flags beat the environment
	cfg, err = Load(newFlags(t, "--dir", "from-flag"))
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Dir)
}

func TestLoad_ConfigFileInWorkingDirectory(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte(
		"attribution: octocat\nbuiltin_templates: false\ngit: false\n"), 0644))

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "octocat", cfg.Attribution)
	assert.False(t, cfg.BuiltinTemplates)
	assert.False(t, cfg.Git)
	assert.NotEmpty(t, cfg.File)

	// The environment beats the file
	t.Setenv("TTS_WEBUI_EXTENSION_ATTRIBUTION", "env-user")
	cfg, err = Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "env-user", cfg.Attribution)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: generated\n"), 0644))

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "generated", cfg.Dir)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	dir := inTempDir(t)

	_, err := Load(newFlags(t, "--config", filepath.Join(dir, "nope.yaml")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte("attribution: [\n"), 0644))

	_, err := Load(newFlags(t))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
