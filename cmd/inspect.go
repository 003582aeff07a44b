package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moofone/kitchensink-testing/internal/domain"
)

var inspectJSONFlag bool
var inspectLogFlag bool

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <run-id> <mutant-id>",
		Short: "Show one mutant of a run: diff, outcome and captured output",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			runArgs := domain.RunArgs{Config: mutationConfig(), RunID: args[0]}

			detail, err := workflow.Inspect(ctx, domain.InspectArgs{RunArgs: runArgs, MutantID: args[1]})
			if err != nil {
				return err
			}

			switch {
			case inspectJSONFlag:
				return writeJSON(cmd, detail)
			case inspectLogFlag:
				return printArtifacts(cmd, runArgs, detail)
			}

			return ui.DisplayMutant(ctx, detail.State, detail.Diff)
		},
	}

	cmd.Flags().BoolVar(&inspectJSONFlag, "json", false, "print the mutant as JSON")
	cmd.Flags().BoolVar(&inspectLogFlag, "log", false, "print the captured stdout and stderr")
	cmd.MarkFlagsMutuallyExclusive("json", "log")

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func printArtifacts(cmd *cobra.Command, runArgs domain.RunArgs, detail domain.MutantDetail) error {
	paths := make([]string, 0, 2)

	for _, p := range []*string{detail.State.StdoutArtifactPath, detail.State.StderrArtifactPath} {
		if p != nil {
			paths = append(paths, *p)
		}
	}

	if len(paths) == 0 {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "no captured output for mutant %s\n", detail.State.Spec.ID)
		return err
	}

	for _, rel := range paths {
		content, err := workflow.ReadArtifact(commandContext(cmd), runArgs, rel)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "==> %s <==\n%s\n", rel, content); err != nil {
			return err
		}
	}

	return nil
}
