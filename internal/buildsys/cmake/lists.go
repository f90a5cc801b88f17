package cmake

import (
	"bytes"
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"text/template"

	"github.com/rotisserie/eris"

	"github.com/sailbuild/sail/internal/logging"
)

// ListsName is the build description filename.
const ListsName = "CMakeLists.txt"

//go:embed templates/CMakeLists.txt.tmpl
var listsSrc string

var listsTmpl = template.Must(template.New(ListsName).Parse(listsSrc))

type listsData struct {
	Name       string
	MinVersion string
}

// EnsureLists writes a build description for the project name into root,
// unless root already has one. An existing CMakeLists.txt is never touched,
// whatever its content; the file belongs to the user after generation.
func EnsureLists(ctx context.Context, root, name string) error {
	path := filepath.Join(root, ListsName)

	_, err := os.Stat(path)
	if err == nil {
		logging.Log(ctx).Debug().Str("path", path).Msg("build description already present")
		return nil
	}
	if !eris.Is(err, os.ErrNotExist) {
		return eris.Wrapf(err, "checking %s", path)
	}

	var buf bytes.Buffer
	if err := listsTmpl.Execute(&buf, listsData{Name: name, MinVersion: MinVersion}); err != nil {
		return eris.Wrapf(err, "rendering %s", ListsName)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return eris.Wrap(err, "writing build description")
	}

	logging.Log(ctx).Debug().Str("path", path).Msg("wrote build description")
	return nil
}
