package buildsys

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/rotisserie/eris"

	"github.com/sailbuild/sail/internal/logging"
	"github.com/sailbuild/sail/internal/platform"
)

// Runner starts child processes and reports their exit status. Everything
// sail executes goes through a Runner.
type Runner interface {
	// Run executes name with args in dir (the working directory is
	// inherited when dir is empty), wiring the child's stdio to the
	// parent's. It returns the child's exit code once it finishes, or -1
	// with an error when the process could not be started.
	Run(ctx context.Context, dir, name string, args ...string) (int, error)

	// Output executes name with args in dir and returns its captured
	// stdout. Meant for short probe commands, never for builds.
	Output(ctx context.Context, dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	logging.Log(ctx).Debug().Str("dir", dir).Msg(platform.Host().QuoteCommand(name, args...))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, eris.Wrapf(err, "starting %s", name)
}

func (ExecRunner) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	logging.Log(ctx).Debug().Str("dir", dir).Msg(platform.Host().QuoteCommand(name, args...))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", eris.Wrapf(err, "running %s", name)
	}
	return string(out), nil
}
