package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sailbuild/sail/internal/term"
)

// version is the value printed by --version. Release builds override it
// with -ldflags "-X github.com/sailbuild/sail/cmd/sail/internal.version=...".
var version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sail",
	Short: "sail is a build orchestrator for C++ projects",
	Long: `sail drives CMake behind a Cargo-style workflow: it finds the project
root by its Sail.toml manifest, generates a build description when none
exists, and builds debug or release targets under target/.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command. It is called by main.main() and exits the
// process on failure.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	var exit *exitError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}
	term.Error("Error: " + err.Error())
	os.Exit(1)
}

// exitError carries an exit status through cobra for commands that have
// already printed their diagnostic line.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// fail signals exit status 1 after the command printed its diagnostic.
func fail() error {
	return &exitError{code: 1}
}

// exit converts a child process exit status into the command result.
func exit(code int) error {
	if code == 0 {
		return nil
	}
	return &exitError{code: code}
}
