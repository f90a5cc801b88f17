package internal

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sailbuild/sail/internal/scaffold"
	"github.com/sailbuild/sail/internal/term"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sail project in the current directory",
	Long:  `Init writes a Sail.toml manifest named after the current directory.`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := scaffold.Init("."); err != nil {
		if eris.Is(err, scaffold.ErrManifestExists) {
			term.Error("Sail.toml already exists in current directory")
		} else {
			term.Error("Failed to create Sail.toml")
		}
		return fail()
	}
	term.Info("Created Sail.toml")
	return nil
}
