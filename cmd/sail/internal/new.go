package internal

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sailbuild/sail/internal/scaffold"
	"github.com/sailbuild/sail/internal/term"
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new sail project",
	Long:  `New creates a directory with a starter manifest and a hello-world source file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := scaffold.New(".", name); err != nil {
		if eris.Is(err, scaffold.ErrExists) {
			term.Error(fmt.Sprintf("Directory '%s' already exists", name))
		} else {
			term.Error("Failed to create project: " + err.Error())
		}
		return fail()
	}
	term.Info(fmt.Sprintf("Created project '%s'", name))
	return nil
}
