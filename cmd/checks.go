package cmd

import (
	"github.com/spf13/cobra"
)

// checksCmd represents the checks command.
var checksCmd = newChecksCmd()

func newChecksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List the registered checks",
		Long:  "List every registered check with its state after --only-checks and --no-<check>-check are applied.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, wf, err := setup(cmd, false)
			if err != nil {
				return err
			}

			return wf.ListChecks()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checksCmd)
}
