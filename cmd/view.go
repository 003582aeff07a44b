package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moofone/kitchensink-testing/internal/controller"
	"github.com/moofone/kitchensink-testing/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <run-id> [mutant-id]",
		Short: "Browse a run interactively",
		Long: `Browse the mutants of a run in a pager, or a single mutant's diff and
captured output when a mutant id is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			runArgs := domain.RunArgs{Config: mutationConfig(), RunID: args[0]}

			tui := controller.NewTUI(cmd)
			if err := tui.Start(ctx, controller.WithBrowseMode()); err != nil {
				return err
			}
			defer tui.Close(ctx)

			if len(args) == 2 {
				detail, err := workflow.Inspect(ctx, domain.InspectArgs{RunArgs: runArgs, MutantID: args[1]})
				if err != nil {
					return err
				}

				return tui.DisplayMutant(ctx, detail.State, detail.Diff)
			}

			snapshot, err := workflow.Status(ctx, runArgs)
			if err != nil {
				return err
			}

			return tui.DisplayMutants(ctx, snapshot)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
