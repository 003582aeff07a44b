package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	killedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	survivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// TUI implements UI with lipgloss styling and a Bubble Tea pager for browsing.
type TUI struct {
	output io.Writer
	mode   StartMode
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{output: cmd.OutOrStdout()}
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	cfg := resolveStartConfig(options)
	t.mode = cfg.mode

	if t.mode == ModeRun {
		t.printf("%s\n", headerStyle.Render("Kitchensink - Mutation Runs"))
	}

	return ctx.Err()
}

// Close finalizes the UI.
func (t *TUI) Close(_ context.Context) {}

// DisplayRunPlan announces the decision taken for this invocation.
func (t *TUI) DisplayRunPlan(_ context.Context, plan RunPlan) {
	t.printf("  %s\n\n", planMessage(plan))
}

// DisplayMutantStarted shows the mutant about to be executed.
func (t *TUI) DisplayMutantStarted(ctx context.Context, position, total int, mutant m.MutantSpec) {
	if ctx.Err() != nil {
		return
	}

	t.printf("  %s %s\n", faintStyle.Render(fmt.Sprintf("[%d/%d]", position, total)), mutant.Label)
}

// DisplayMutantFinished shows the outcome of an executed mutant.
func (t *TUI) DisplayMutantFinished(_ context.Context, mutant m.MutantSpec, outcome m.MutationOutcome, elapsed time.Duration) {
	t.printf("        %s %s %s\n",
		outcomeBadge(outcome.Status()), mutant.ID, faintStyle.Render(elapsed.Round(time.Millisecond).String()))
}

// DisplayInterrupted reports that the run stopped early.
func (t *TUI) DisplayInterrupted(_ context.Context, runID, reason string) {
	t.printf("\n  %s run %s: %s\n", warnStyle.Render("interrupted"), runID, reason)
	t.printf("  %s\n", faintStyle.Render("run the same command again to resume"))
}

// DisplayRunResult prints the final summary of an invocation.
func (t *TUI) DisplayRunResult(_ context.Context, result m.RunResult) {
	summary := m.Summarize(result.Snapshot)

	t.printf("\n%s", renderSummaryTable(summary))

	score := fmt.Sprintf("%.2f%%", summary.MutationScore)
	if summary.Survived > 0 {
		score = survivedStyle.Render(score)
	} else {
		score = killedStyle.Render(score)
	}

	t.printf("\n  Run %s  score %s\n", result.RunID, score)
	t.printf("  %s\n", faintStyle.Render(result.RunDir))
}

// DisplayMutants shows every mutant of the snapshot, paginated when it does not fit.
func (t *TUI) DisplayMutants(ctx context.Context, snapshot *m.RunSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	summary := m.Summarize(snapshot)
	lines := make([]string, 0, len(snapshot.Mutants))

	for _, st := range snapshot.SortedStates() {
		lines = append(lines, fmt.Sprintf("  %s %s  %s", outcomeBadge(st.Status), st.Spec.ID, st.Spec.Label))
	}

	title := fmt.Sprintf("Run %s", snapshot.RunID)
	footer := fmt.Sprintf("  %d mutant(s), %d survived, score %.2f%%", summary.Total, summary.Survived, summary.MutationScore)

	return t.page(ctx, newPagerModel(title, lines, footer))
}

// DisplayMutant prints one mutant in detail.
func (t *TUI) DisplayMutant(ctx context.Context, state *m.MutantState, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := strings.Split(strings.TrimRight(renderMutantDetail(state, colorDiff(diff)), "\n"), "\n")

	return t.page(ctx, newPagerModel("Mutant "+state.Spec.ID, lines, ""))
}

// DisplayRuns shows the runs found under the run root.
func (t *TUI) DisplayRuns(ctx context.Context, runs []m.RunListing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(runs) == 0 {
		t.printf("  No runs found.\n")
		return nil
	}

	lines := strings.Split(strings.TrimRight(renderRunsTable(runs), "\n"), "\n")

	return t.page(ctx, newPagerModel("Runs", lines, ""))
}

func (t *TUI) page(ctx context.Context, model pagerModel) error {
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// Short content is printed directly.
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

func outcomeBadge(status m.MutationStatus) string {
	label := fmt.Sprintf("%-8s", status.String())

	switch status {
	case m.StatusKilled:
		return killedStyle.Render(label)
	case m.StatusSurvived:
		return survivedStyle.Render(label)
	case m.StatusTimeout, m.StatusError:
		return warnStyle.Render(label)
	case m.StatusPending, m.StatusRunning, m.StatusUnviable, m.StatusSkipped:
	}

	return faintStyle.Render(label)
}

func colorDiff(diff string) string {
	if diff == "" {
		return ""
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = faintStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = killedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = survivedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

type pagerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Quit     key.Binding
}

var pagerKeys = pagerKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	PageDown: key.NewBinding(key.WithKeys("d", "pgdown"), key.WithHelp("d", "page down")),
	PageUp:   key.NewBinding(key.WithKeys("u", "pgup"), key.WithHelp("u", "page up")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k pagerKeyMap) helpLine() string {
	bindings := []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}
	parts := make([]string, 0, len(bindings))

	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}

	return strings.Join(parts, " | ")
}

// pagerModel is a scrollable list of pre-rendered lines.
type pagerModel struct {
	title    string
	lines    []string
	footer   string
	height   int
	width    int
	offset   int
	quitting bool
}

func newPagerModel(title string, lines []string, footer string) pagerModel {
	return pagerModel{title: title, lines: lines, footer: footer}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width

		pm.offset = min(pm.offset, pm.maxOffset())

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pagerKeys.Quit):
		pm.quitting = true
		return pm, tea.Quit
	case key.Matches(msg, pagerKeys.Down):
		pm.offset = min(pm.offset+1, pm.maxOffset())
	case key.Matches(msg, pagerKeys.Up):
		pm.offset = max(pm.offset-1, 0)
	case key.Matches(msg, pagerKeys.Top):
		pm.offset = 0
	case key.Matches(msg, pagerKeys.Bottom):
		pm.offset = pm.maxOffset()
	case key.Matches(msg, pagerKeys.PageDown):
		pm.offset = min(pm.offset+pm.itemsPerPage(), pm.maxOffset())
	case key.Matches(msg, pagerKeys.PageUp):
		pm.offset = max(pm.offset-pm.itemsPerPage(), 0)
	}

	return pm, nil
}

// itemsPerPage calculates how many lines fit on screen.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10
	}
	// Header box (3) + blank, footer (blank + summary), pager footer (blank + page + help).
	reserved := 9

	available := pm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (pm pagerModel) maxOffset() int {
	maxOff := len(pm.lines) - pm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

func (pm pagerModel) needsPagination() bool {
	if len(pm.lines) == 0 || pm.height == 0 {
		return false
	}

	return len(pm.lines) > pm.itemsPerPage()
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(pm.title))
	b.WriteString("\n\n")

	if len(pm.lines) == 0 {
		b.WriteString("  Nothing to show\n")
		return b.String()
	}

	paginated := pm.needsPagination()

	start, end := 0, len(pm.lines)
	if paginated {
		start = min(pm.offset, pm.maxOffset())
		end = min(start+pm.itemsPerPage(), len(pm.lines))
	}

	for _, line := range pm.lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if pm.footer != "" {
		b.WriteString("\n")
		b.WriteString(pm.footer)
		b.WriteString("\n")
	}

	if paginated {
		perPage := pm.itemsPerPage()
		currentPage := (start / perPage) + 1
		totalPages := (len(pm.lines) + perPage - 1) / perPage

		b.WriteString("\n")
		fmt.Fprintf(&b, "  Page %d/%d | Showing %d-%d of %d\n", currentPage, totalPages, start+1, end, len(pm.lines))
		b.WriteString("  " + faintStyle.Render(pagerKeys.helpLine()) + "\n")
	}

	return b.String()
}
