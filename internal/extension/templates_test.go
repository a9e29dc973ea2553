package extension

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateSet_BuiltinHasEveryLayoutTemplate(t *testing.T) {
	set := NewTemplateSet("", true)

	for _, f := range Layout(&Extension{Identifier: "x"}) {
		data, origin, err := set.Read(f.Template)
		require.NoError(t, err, f.Template)
		assert.NotEmpty(t, data, f.Template)
		assert.Equal(t, "builtin", origin)
	}
}

func TestTemplateSet_OverrideDirectoryWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "LICENSE"), []byte("custom"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github", "workflows"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".github", "workflows", "build_wheel.yml"), []byte("name: x\n"), 0644))

	set := NewTemplateSet(dir, true)

	data, origin, err := set.Read("LICENSE")
	require.NoError(t, err)
	assert.Equal(t, "custom", string(data))
	assert.Equal(t, dir, origin)

	data, origin, err = set.Read(".github/workflows/build_wheel.yml")
	require.NoError(t, err)
	assert.Equal(t, "name: x\n", string(data))
	assert.Equal(t, dir, origin)

	// Falls through to the builtin layer
	_, origin, err = set.Read("README.md.tmpl")
	require.NoError(t, err)
	assert.Equal(t, "builtin", origin)
}

func TestTemplateSet_MissingOverrideDirectory(t *testing.T) {
	set := NewTemplateSet(filepath.Join(t.TempDir(), "does-not-exist"), true)

	_, origin, err := set.Read("LICENSE")
	require.NoError(t, err)
	assert.Equal(t, "builtin", origin)
}

func TestTemplateSet_NotFound(t *testing.T) {
	set := NewTemplateSet(t.TempDir(), false)

	_, _, err := set.Read("LICENSE")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, _, err = NewTemplateSetFS(fstest.MapFS{}).Read(".gitignore")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestUndot(t *testing.T) {
	assert.Equal(t, "gitignore", undot(".gitignore"))
	assert.Equal(t, "github/workflows/build_wheel.yml", undot(".github/workflows/build_wheel.yml"))
	assert.Equal(t, "__init__.py.tmpl", undot("__init__.py.tmpl"))
}
