package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/moofone/kitchensink-testing/internal/domain"
	m "github.com/moofone/kitchensink-testing/internal/model"
)

// statusCmd represents the status command.
var statusCmd = newStatusCmd()

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <run-id>",
		Short: "Show the summary of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			cfg := mutationConfig()

			snapshot, err := workflow.Status(ctx, domain.RunArgs{Config: cfg, RunID: args[0]})
			if err != nil {
				return err
			}

			ui.DisplayRunResult(ctx, m.RunResult{
				RunID:    args[0],
				RunDir:   filepath.Join(cfg.RunRoot, args[0]),
				Snapshot: snapshot,
			})

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
