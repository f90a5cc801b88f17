package internal

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sailbuild/sail/internal/build"
	"github.com/sailbuild/sail/internal/buildsys"
	"github.com/sailbuild/sail/internal/logging"
	"github.com/sailbuild/sail/internal/project"
	"github.com/sailbuild/sail/internal/term"
)

var buildRelease bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the current project",
	Long:  `Build locates the enclosing sail project and compiles it into target/.`,
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildRelease, "release", false, "Build in release mode")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := logging.WithLogger(cmd.Context(), &log.Logger)
	mode := buildsys.ModeFor(buildRelease)

	term.Info("Configuring project...")
	term.Info("Compiling...")

	res, err := build.Build(ctx, build.Options{Dir: ".", Mode: mode})
	if err != nil {
		logging.Log(ctx).Debug().Msg(eris.ToString(err, true))
		term.Error(diagnose(err))
		return fail()
	}

	if res.RequireArtifact() == nil {
		term.Task(fmt.Sprintf("Finished %s [%s] target(s) in target/%s/", mode.Subdir(), mode, mode.Subdir()))
	} else {
		term.Warn("Warning: Executable not found at expected location")
	}
	return nil
}

// diagnose maps a pipeline failure to its single user-facing line.
func diagnose(err error) string {
	switch {
	case eris.Is(err, project.ErrNotFound):
		return "Error: Sail.toml not found in current directory or any parent directory. Run 'sail init' first."
	case eris.Is(err, project.ErrUnreadable):
		return "Error: Failed to read Sail.toml"
	case eris.Is(err, project.ErrNoName):
		return "Error: Could not find project name in Sail.toml"
	case eris.Is(err, build.ErrMissingSources):
		return "Error: src directory not found"
	case eris.Is(err, build.ErrDescriptionWrite):
		return "Error: Failed to create CMakeLists.txt"
	case eris.Is(err, build.ErrConfigureFailed):
		return "Error: CMake configuration failed"
	case eris.Is(err, build.ErrBuildFailed):
		return "Error: Build failed"
	default:
		return "Error: " + err.Error()
	}
}
