package internal

import (
	"fmt"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sailbuild/sail/internal/build"
	"github.com/sailbuild/sail/internal/buildsys"
	"github.com/sailbuild/sail/internal/logging"
	"github.com/sailbuild/sail/internal/term"
)

var runRelease bool

var runCmd = &cobra.Command{
	Use:   "run [args...]",
	Short: "Build and run the current project",
	Long: `Run compiles the current project and executes the produced binary.
Arguments after the flags are passed to the binary unchanged.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runRelease, "release", false, "Run in release mode")
	// Everything after the first positional argument belongs to the binary.
	runCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := logging.WithLogger(cmd.Context(), &log.Logger)
	mode := buildsys.ModeFor(runRelease)

	term.Info(fmt.Sprintf("Compiling %s...", mode.Subdir()))

	res, err := build.Build(ctx, build.Options{Dir: ".", Mode: mode})
	if err != nil {
		logging.Log(ctx).Debug().Msg(eris.ToString(err, true))
		term.Error(diagnose(err))
		return fail()
	}

	if err := res.RequireArtifact(); err != nil {
		term.Error(fmt.Sprintf("Error: Executable not found at %s", res.Artifact))
		return fail()
	}

	term.Info(fmt.Sprintf("Running `%s`", filepath.Base(res.Artifact)))

	code, err := buildsys.ExecRunner{}.Run(ctx, "", res.Artifact, args...)
	if err != nil {
		term.Error("Error: " + err.Error())
		return fail()
	}
	return exit(code)
}
