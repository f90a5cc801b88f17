// Package cmake drives CMake configure/build cycles for sail projects.
package cmake

import (
	"context"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sailbuild/sail/internal/buildsys"
)

// Tool is the default executable name. The SAIL_CMAKE environment variable
// overrides it, e.g. to pin a specific installation.
const Tool = "cmake"

// CMake invokes the cmake executable through a buildsys.Runner. Its output
// streams to the terminal untouched; the exit status is the only signal
// interpreted.
type CMake struct {
	sourceDir string
	buildDir  string
	buildType string
	tool      string
	runner    buildsys.Runner
}

var _ buildsys.Toolchain = (*CMake)(nil)

// New returns a CMake that configures sourceDir into buildDir in mode.
func New(sourceDir, buildDir string, mode buildsys.Mode, runner buildsys.Runner) *CMake {
	return &CMake{
		sourceDir: sourceDir,
		buildDir:  buildDir,
		buildType: mode.String(),
		tool:      toolName(),
		runner:    runner,
	}
}

func toolName() string {
	if tool := os.Getenv("SAIL_CMAKE"); tool != "" {
		return tool
	}
	return Tool
}

// Configure runs "cmake -DCMAKE_BUILD_TYPE=<mode> -S <source> -B <build>".
// Extra args are appended at the end.
func (c *CMake) Configure(ctx context.Context, args ...string) error {
	cmakeArgs := []string{"-DCMAKE_BUILD_TYPE=" + c.buildType, "-S", c.sourceDir, "-B", c.buildDir}
	cmakeArgs = append(cmakeArgs, args...)
	return c.run(ctx, cmakeArgs)
}

// Build runs "cmake --build <build> --config <mode>" with optional extra
// arguments.
func (c *CMake) Build(ctx context.Context, args ...string) error {
	cmakeArgs := []string{"--build", c.buildDir, "--config", c.buildType}
	cmakeArgs = append(cmakeArgs, args...)
	return c.run(ctx, cmakeArgs)
}

func (c *CMake) run(ctx context.Context, args []string) error {
	code, err := c.runner.Run(ctx, "", c.tool, args...)
	if err != nil {
		return err
	}
	if code != 0 {
		return eris.Errorf("%s exited with status %d", c.tool, code)
	}
	return nil
}
