package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moofone/kitchensink-testing/internal/domain"
)

var reportFormatFlag string
var reportOutputFlag string

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <run-id>",
		Short: "Render a run report",
		Long: `Render a run report as Markdown (md), JSON (json), SARIF 2.1.0 (sarif),
JUnit XML (junit) or YAML (yaml). The report is written to stdout unless
--output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := domain.ParseReportFormat(reportFormatFlag)
			if err != nil {
				return err
			}

			out, err := workflow.Report(commandContext(cmd), domain.ReportArgs{
				RunArgs: domain.RunArgs{Config: mutationConfig(), RunID: args[0]},
				Format:  format,
			})
			if err != nil {
				return err
			}

			if reportOutputFlag == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}

			if err := os.WriteFile(reportOutputFlag, []byte(out), 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&reportFormatFlag, "format", string(domain.ReportMarkdown), "report format: md, json, sarif, junit or yaml")
	cmd.Flags().StringVarP(&reportOutputFlag, "output", "o", "", "write the report to this file instead of stdout")

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
