package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moofone/kitchensink-testing/internal/domain"
)

var runsJSONFlag bool

// runsCmd represents the runs command.
var runsCmd = newRunsCmd()

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List the runs under the run root, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			runs, err := workflow.ListRuns(ctx, domain.RunArgs{Config: mutationConfig()})
			if err != nil {
				return err
			}

			if runsJSONFlag {
				return writeJSON(cmd, runs)
			}

			return ui.DisplayRuns(ctx, runs)
		},
	}

	cmd.Flags().BoolVar(&runsJSONFlag, "json", false, "print runs as JSON")

	return cmd
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
