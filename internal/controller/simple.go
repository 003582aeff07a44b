package controller

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

const outputPrefix = "kitchensink-testing: "

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayRunPlan announces the decision taken for this invocation.
func (s *SimpleUI) DisplayRunPlan(_ context.Context, plan RunPlan) {
	s.printf("%s%s\n", outputPrefix, planMessage(plan))
}

func planMessage(plan RunPlan) string {
	switch plan.Kind {
	case PlanNew:
		return fmt.Sprintf("discovered %d mutant(s) in %s (run %s)", plan.Queue, plan.ProjectDir, plan.RunID)
	case PlanResume:
		msg := fmt.Sprintf("resuming run %s, %d mutant(s) remaining", plan.RunID, plan.Queue)
		if plan.Survivors > 0 {
			msg += fmt.Sprintf(", retesting %d survivor(s) first", plan.Survivors)
		}

		return msg
	case PlanRerunSurvivors:
		return fmt.Sprintf("rerunning %d survivor mutant(s) from run %s", plan.Queue, plan.RunID)
	case PlanAlreadyCompleted:
		return fmt.Sprintf("run %s already completed", plan.RunID)
	case PlanNoSurvivors:
		return fmt.Sprintf("run %s has no survivor mutants to rerun", plan.RunID)
	}

	return fmt.Sprintf("run %s", plan.RunID)
}

// DisplayMutantStarted shows the mutant about to be executed.
func (s *SimpleUI) DisplayMutantStarted(ctx context.Context, position, total int, mutant m.MutantSpec) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%srunning mutant %d/%d: %s\n", outputPrefix, position, total, mutant.Label)
}

// DisplayMutantFinished shows the outcome of an executed mutant.
func (s *SimpleUI) DisplayMutantFinished(_ context.Context, mutant m.MutantSpec, outcome m.MutationOutcome, elapsed time.Duration) {
	s.printf("%s%s -> %s (%s)\n", outputPrefix, mutant.ID, outcome.Kind, elapsed.Round(time.Millisecond))
}

// DisplayInterrupted reports that the run stopped early.
func (s *SimpleUI) DisplayInterrupted(_ context.Context, runID, reason string) {
	s.printf("%srun %s interrupted: %s\n", outputPrefix, runID, reason)
}

// DisplayRunResult prints the final summary of an invocation.
func (s *SimpleUI) DisplayRunResult(_ context.Context, result m.RunResult) {
	summary := m.Summarize(result.Snapshot)
	s.printf("\n%s", renderSummaryTable(summary))
	s.printf("Run %s (completed: %t, interrupted: %t)\n", result.RunID, result.Snapshot.Completed, result.Snapshot.Interrupted)
	s.printf("Mutation score: %.2f%%\n", summary.MutationScore)
}

// DisplayMutants prints every mutant of the snapshot.
func (s *SimpleUI) DisplayMutants(ctx context.Context, snapshot *m.RunSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderMutantTable(snapshot.SortedStates()))

	return nil
}

// DisplayMutant prints one mutant in detail.
func (s *SimpleUI) DisplayMutant(ctx context.Context, state *m.MutantState, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderMutantDetail(state, diff))

	return nil
}

// DisplayRuns prints one line per run found under the run root.
func (s *SimpleUI) DisplayRuns(ctx context.Context, runs []m.RunListing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(runs) == 0 {
		s.printf("No runs found.\n")
		return nil
	}

	s.printf("%s", renderRunsTable(runs))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSummaryTable(summary m.RunSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := [][]string{
		{"total", fmt.Sprintf("%d", summary.Total)},
		{"killed", fmt.Sprintf("%d", summary.Killed)},
		{"survived", fmt.Sprintf("%d", summary.Survived)},
		{"timeout", fmt.Sprintf("%d", summary.Timeout)},
		{"unviable", fmt.Sprintf("%d", summary.Unviable)},
		{"skipped", fmt.Sprintf("%d", summary.Skipped)},
		{"error", fmt.Sprintf("%d", summary.Error)},
		{"incomplete", fmt.Sprintf("%d", summary.Incomplete)},
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"Score", fmt.Sprintf("%.2f%%", summary.MutationScore)})
	table.Render()

	return tableBuffer.String()
}

func renderMutantTable(states []*m.MutantState) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Status", "Type", "Label"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, st := range states {
		table.Append([]string{st.Spec.ID, st.Status.String(), string(st.Spec.Type()), st.Spec.Label})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(states)), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func renderRunsTable(runs []m.RunListing) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run", "State", "Mutants", "Survived", "Score"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, run := range runs {
		table.Append([]string{
			run.RunID,
			runState(run),
			fmt.Sprintf("%d", run.Summary.Total),
			fmt.Sprintf("%d", run.Summary.Survived),
			fmt.Sprintf("%.2f%%", run.Summary.MutationScore),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func runState(run m.RunListing) string {
	switch {
	case run.Completed:
		return "completed"
	case run.Interrupted:
		return "interrupted"
	}

	return "incomplete"
}

func renderMutantDetail(state *m.MutantState, diff string) string {
	var b bytes.Buffer

	spec := state.Spec
	fmt.Fprintf(&b, "Mutant %s\n", spec.ID)
	fmt.Fprintf(&b, "  label:    %s\n", spec.Label)
	fmt.Fprintf(&b, "  selector: %s\n", spec.Selector)

	if spec.SourceFile != "" {
		fmt.Fprintf(&b, "  location: %s:%d\n", spec.SourceFile, spec.SourceLine)
	}

	fmt.Fprintf(&b, "  type:     %s\n", spec.Type())
	fmt.Fprintf(&b, "  status:   %s\n", state.Status)

	if state.ExitCode != nil {
		fmt.Fprintf(&b, "  exit:     %d\n", *state.ExitCode)
	}

	if state.DurationMs != nil {
		fmt.Fprintf(&b, "  duration: %dms\n", *state.DurationMs)
	}

	if state.LastError != nil {
		fmt.Fprintf(&b, "  error:    %s\n", *state.LastError)
	}

	if state.StdoutArtifactPath != nil {
		fmt.Fprintf(&b, "  stdout:   %s\n", *state.StdoutArtifactPath)
	}

	if state.StderrArtifactPath != nil {
		fmt.Fprintf(&b, "  stderr:   %s\n", *state.StderrArtifactPath)
	}

	if diff != "" {
		fmt.Fprintf(&b, "\n%s\n", diff)
	}

	return b.String()
}
