package cmd

import (
	"github.com/spf13/cobra"
)

const fixLongDescription = `Lint the given documents and apply every available fix.

Fixed documents are parsed again before they are written back; a document
whose fixes would make it invalid is left untouched and reported as a
syntax error. Problems that were fixed are reported with the "fixed" kind.`

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix FILE...",
		Short: "Lint documents and write fixes back",
		Long:  fixLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, true)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
