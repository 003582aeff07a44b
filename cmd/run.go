package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/moofone/kitchensink-testing/internal/domain"
	m "github.com/moofone/kitchensink-testing/internal/model"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run, resume or retest mutation testing for the project",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeRun(cmd, "", func(ctx context.Context, w domain.Workflow, runArgs domain.RunArgs) (m.RunResult, error) {
				return w.RunNew(ctx, runArgs)
			})
		},
	}
}

// resumeCmd represents the resume command.
var resumeCmd = newResumeCmd()

func newResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <run-id>",
		Short: "Resume a run: retest survivors, then the mutants not yet tested",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(cmd, args[0], func(ctx context.Context, w domain.Workflow, runArgs domain.RunArgs) (m.RunResult, error) {
				return w.Resume(ctx, runArgs)
			})
		},
	}
}

// rerunCmd represents the rerun command.
var rerunCmd = newRerunCmd()

func newRerunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rerun <run-id>",
		Short: "Retest only the surviving mutants of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(cmd, args[0], func(ctx context.Context, w domain.Workflow, runArgs domain.RunArgs) (m.RunResult, error) {
				return w.RerunSurvivors(ctx, runArgs)
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(rerunCmd)
}
