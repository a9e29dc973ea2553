package extension

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrTemplateNotFound is returned when no layer of a TemplateSet has the
// requested resource.
var ErrTemplateNotFound = errors.New("template not found")

//go:embed all:templates
var builtinTemplates embed.FS

type templateLayer struct {
	fsys   fs.FS
	origin string

	// rename maps a resource name to the layer's file name.
	rename func(string) string
}

// TemplateSet looks template resources up in an ordered list of layers.
// The first layer that has a resource wins.
type TemplateSet struct {
	layers []templateLayer
}

// NewTemplateSet returns the default set: the override directory dir
// first (skipped when empty), then the embedded defaults unless builtin
// is false.
func NewTemplateSet(dir string, builtin bool) *TemplateSet {
	s := &TemplateSet{}
	if dir != "" {
		s.layers = append(s.layers, templateLayer{fsys: os.DirFS(dir), origin: dir})
	}
	if builtin {
		sub, err := fs.Sub(builtinTemplates, "templates")
		if err != nil {
			panic(err)
		}
		s.layers = append(s.layers, templateLayer{fsys: sub, origin: "builtin", rename: undot})
	}
	return s
}

// NewTemplateSetFS builds a set from arbitrary file systems, in lookup
// order. Names are used as-is.
func NewTemplateSetFS(layers ...fs.FS) *TemplateSet {
	s := &TemplateSet{}
	for i, fsys := range layers {
		s.layers = append(s.layers, templateLayer{fsys: fsys, origin: fmt.Sprintf("layer %d", i)})
	}
	return s
}

// Read returns the content of the named resource and the origin of the
// layer it came from.
func (s *TemplateSet) Read(name string) ([]byte, string, error) {
	for _, l := range s.layers {
		file := name
		if l.rename != nil {
			file = l.rename(name)
		}
		data, err := fs.ReadFile(l.fsys, file)
		if err == nil {
			return data, l.origin, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, l.origin, fmt.Errorf("could not read template %s from %s: %w", name, l.origin, err)
		}
	}
	return nil, "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
}

// undot strips the leading dot of every path element. Embedded files
// cannot start with a dot, so .github/workflows/x.yml is stored as
// github/workflows/x.yml.
func undot(name string) string {
	parts := strings.Split(name, "/")
	for i, p := range parts {
		parts[i] = strings.TrimPrefix(p, ".")
	}
	return strings.Join(parts, "/")
}
