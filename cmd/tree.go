package cmd

import (
	"github.com/spf13/cobra"
)

// treeCmd represents the tree command.
var treeCmd = newTreeCmd()

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree FILE...",
		Short: "Print the key tree of documents",
		Long:  "Print every key of each document with its depth, kind, parent key and position.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, wf, err := setup(cmd, false)
			if err != nil {
				return err
			}

			return wf.ShowTree(cmd.Context(), parsePaths(args)...)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
