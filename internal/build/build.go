// Package build orchestrates the sail build pipeline: locate the project,
// read its manifest, generate the build description and drive the toolchain.
package build

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/sailbuild/sail/internal/buildsys"
	"github.com/sailbuild/sail/internal/buildsys/cmake"
	"github.com/sailbuild/sail/internal/logging"
	"github.com/sailbuild/sail/internal/platform"
	"github.com/sailbuild/sail/internal/project"
)

// Options configures a build.
type Options struct {
	Dir  string        // directory the project is located from, typically the cwd
	Mode buildsys.Mode // build configuration

	// Runner executes toolchain processes. Defaults to buildsys.ExecRunner.
	Runner buildsys.Runner

	// Platform selects artifact naming conventions. Defaults to the host.
	Platform platform.Platform
}

// Result describes a finished build.
type Result struct {
	Root      string // project root, the directory holding Sail.toml
	Name      string // project name from the manifest
	TargetDir string // per-mode output directory under root
	Artifact  string // expected executable path; existence is not checked
	Mode      buildsys.Mode
}

// RequireArtifact reports whether the expected executable actually exists.
// A reported-successful build can still leave it absent, e.g. when a user
// description names a different target.
func (r *Result) RequireArtifact() error {
	if _, err := os.Stat(r.Artifact); err != nil {
		return eris.Wrap(ErrArtifactMissing, r.Artifact)
	}
	return nil
}

// Build runs the pipeline against the project enclosing opts.Dir. Stages
// run in order and the first failure returns immediately; the toolchain
// build step never runs after a failed configure, and nothing is retried.
//
// The Result carries the expected artifact path without verifying it
// exists. Existence is the caller's concern: the build command reports a
// missing artifact as a warning, run refuses to continue.
func Build(ctx context.Context, opts Options) (*Result, error) {
	runner := opts.Runner
	if runner == nil {
		runner = buildsys.ExecRunner{}
	}
	plat := opts.Platform
	if plat == (platform.Platform{}) {
		plat = platform.Host()
	}
	log := logging.Log(ctx)

	root, err := project.Locate(opts.Dir)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("root", root).Msg("located project")

	name, err := project.ReadName(project.Manifest(root), nil)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("name", name).Stringer("mode", opts.Mode).Msg("building")

	srcDir := filepath.Join(root, "src")
	if _, err := os.Stat(srcDir); err != nil {
		if eris.Is(err, os.ErrNotExist) {
			return nil, ErrMissingSources
		}
		return nil, eris.Wrapf(err, "checking %s", srcDir)
	}

	targetDir := filepath.Join(root, "target", opts.Mode.Subdir())
	buildDir := filepath.Join(targetDir, "build")
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "creating %s", buildDir)
	}

	if err := cmake.EnsureLists(ctx, root, name); err != nil {
		return nil, eris.Wrap(ErrDescriptionWrite, err.Error())
	}

	if err := cmake.Probe(ctx, runner); err != nil {
		return nil, eris.Wrap(ErrConfigureFailed, err.Error())
	}

	var tc buildsys.Toolchain = cmake.New(root, buildDir, opts.Mode, runner)
	if err := tc.Configure(ctx); err != nil {
		return nil, eris.Wrap(ErrConfigureFailed, err.Error())
	}
	if err := tc.Build(ctx); err != nil {
		return nil, eris.Wrap(ErrBuildFailed, err.Error())
	}

	return &Result{
		Root:      root,
		Name:      name,
		TargetDir: targetDir,
		Artifact:  plat.ExecutablePath(targetDir, name),
		Mode:      opts.Mode,
	}, nil
}
