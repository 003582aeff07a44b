package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moofone/kitchensink-testing/internal/domain"
)

var listJSONFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <run-id>",
		Short: "List the mutants of a run with their status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			snapshot, err := workflow.Status(ctx, domain.RunArgs{Config: mutationConfig(), RunID: args[0]})
			if err != nil {
				return err
			}

			if listJSONFlag {
				return writeJSON(cmd, snapshot.SortedStates())
			}

			return ui.DisplayMutants(ctx, snapshot)
		},
	}

	cmd.Flags().BoolVar(&listJSONFlag, "json", false, "print mutants as JSON")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func writeJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return err
}
