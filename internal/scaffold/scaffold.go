// Package scaffold creates new sail projects.
package scaffold

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"text/template"

	"github.com/rotisserie/eris"

	"github.com/sailbuild/sail/internal/project"
)

//go:embed templates/manifest.toml.tmpl
var manifestSrc string

//go:embed templates/main.cpp
var mainSrc string

var manifestTmpl = template.Must(template.New(project.ManifestName).Parse(manifestSrc))

var (
	// ErrManifestExists reports an init target that already has a manifest.
	ErrManifestExists = eris.New("Sail.toml already exists in current directory")

	// ErrExists reports a new project directory that already exists.
	ErrExists = eris.New("directory already exists")
)

// Init writes a manifest into dir, named after dir's basename. The
// directory itself is left untouched; nothing else is created.
func Init(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return eris.Wrap(err, "resolving directory")
	}

	path := filepath.Join(abs, project.ManifestName)
	if _, err := os.Stat(path); err == nil {
		return ErrManifestExists
	} else if !eris.Is(err, os.ErrNotExist) {
		return eris.Wrapf(err, "checking %s", path)
	}

	return writeManifest(path, filepath.Base(abs))
}

// New creates the directory name under parent holding a starter project:
// a manifest, a src directory and a hello-world main.cpp.
func New(parent, name string) error {
	dir := filepath.Join(parent, name)
	if _, err := os.Stat(dir); err == nil {
		return eris.Wrapf(ErrExists, "creating %s", name)
	} else if !eris.Is(err, os.ErrNotExist) {
		return eris.Wrapf(err, "checking %s", dir)
	}

	if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
		return eris.Wrap(err, "creating project directories")
	}
	if err := writeManifest(filepath.Join(dir, project.ManifestName), name); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "src", "main.cpp"), []byte(mainSrc), 0o644); err != nil {
		return eris.Wrap(err, "writing src/main.cpp")
	}
	return nil
}

func writeManifest(path, name string) error {
	var buf bytes.Buffer
	if err := manifestTmpl.Execute(&buf, struct{ Name string }{name}); err != nil {
		return eris.Wrap(err, "rendering manifest")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return eris.Wrap(err, "writing manifest")
	}
	return nil
}
