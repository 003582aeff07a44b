// Package domain drives mutation runs: it decides whether to start, resume or
// rerun, executes mutants one at a time and records every step in the run's
// event log.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/moofone/kitchensink-testing/internal/adapter"
	"github.com/moofone/kitchensink-testing/internal/controller"
	"github.com/moofone/kitchensink-testing/internal/metrics"
	m "github.com/moofone/kitchensink-testing/internal/model"
)

// ErrMutantNotFound is returned by Inspect for unknown mutant ids.
var ErrMutantNotFound = errors.New("mutant not found")

// RunArgs selects the configuration and, for resume and rerun, the run.
type RunArgs struct {
	Config m.MutationConfig
	RunID  string
}

// ReportArgs selects a run and the rendering.
type ReportArgs struct {
	RunArgs
	Format ReportFormat
}

// InspectArgs selects one mutant of a run.
type InspectArgs struct {
	RunArgs
	MutantID string
}

// MutantDetail is one mutant of a run with its diff and run directory.
type MutantDetail struct {
	RunID  string         `json:"run_id"`
	RunDir string         `json:"run_dir"`
	State  *m.MutantState `json:"mutant"`
	Diff   string         `json:"diff,omitempty"`
}

// Workflow is the run controller.
type Workflow interface {
	// RunNew resumes the newest compatible incomplete run, else reruns the
	// survivors of the newest compatible completed run, else starts a new run.
	RunNew(ctx context.Context, args RunArgs) (m.RunResult, error)
	Resume(ctx context.Context, args RunArgs) (m.RunResult, error)
	RerunSurvivors(ctx context.Context, args RunArgs) (m.RunResult, error)
	Status(ctx context.Context, args RunArgs) (*m.RunSnapshot, error)
	Report(ctx context.Context, args ReportArgs) (string, error)
	ListRuns(ctx context.Context, args RunArgs) ([]m.RunListing, error)
	Inspect(ctx context.Context, args InspectArgs) (MutantDetail, error)
	ReadArtifact(ctx context.Context, args RunArgs, relPath string) ([]byte, error)
}

// WorkflowOption customizes a workflow.
type WorkflowOption func(*workflow)

// WithInterruptSource replaces the process signal source.
func WithInterruptSource(src InterruptSource) WorkflowOption {
	return func(w *workflow) {
		w.interrupts = src
	}
}

// WithHistorySink mirrors every appended event to sink.
func WithHistorySink(sink adapter.HistorySink) WorkflowOption {
	return func(w *workflow) {
		w.history = sink
	}
}

type workflow struct {
	eventLog   adapter.EventLogAdapter
	runStore   adapter.RunStoreAdapter
	engine     adapter.MutationEngine
	env        adapter.EnvironmentAdapter
	history    adapter.HistorySink
	interrupts InterruptSource
	controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	eventLog adapter.EventLogAdapter,
	runStore adapter.RunStoreAdapter,
	engine adapter.MutationEngine,
	env adapter.EnvironmentAdapter,
	ui controller.UI,
	opts ...WorkflowOption,
) Workflow {
	w := &workflow{
		eventLog:   eventLog,
		runStore:   runStore,
		engine:     engine,
		env:        env,
		history:    adapter.NopHistorySink{},
		interrupts: SignalInterrupts(),
		UI:         ui,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// pass is one execution of a mutant queue against a run.
type pass struct {
	runID    string
	runDir   string
	cfg      m.MutationConfig
	queue    []m.MutantSpec
	reason   string
	complete bool
}

func (w *workflow) RunNew(ctx context.Context, args RunArgs) (m.RunResult, error) {
	ctx, disarm, err := w.arm(ctx)
	if err != nil {
		return m.RunResult{}, err
	}
	defer disarm()

	candidates, err := w.scanRuns(ctx, args.Config.RunRoot)
	if err != nil {
		return m.RunResult{}, err
	}

	if c, ok := latestIncomplete(candidates, args.Config); ok {
		slog.Info("Resuming interrupted run", "run_id", c.runID)
		return w.resume(ctx, args.Config, c.runID, c.snapshot)
	}

	if c, ok := latestCompletedWithSurvivors(candidates, args.Config); ok {
		slog.Info("Retesting survivors from completed run", "run_id", c.runID)
		return w.rerun(ctx, args.Config, c.runID, c.snapshot)
	}

	return w.start(ctx, args.Config)
}

func (w *workflow) Resume(ctx context.Context, args RunArgs) (m.RunResult, error) {
	ctx, disarm, err := w.arm(ctx)
	if err != nil {
		return m.RunResult{}, err
	}
	defer disarm()

	snapshot, err := w.replay(w.runDir(args))
	if err != nil {
		slog.Error("Failed to load run", "run_id", args.RunID, "error", err)
		return m.RunResult{}, err
	}

	return w.resume(ctx, args.Config, args.RunID, snapshot)
}

func (w *workflow) RerunSurvivors(ctx context.Context, args RunArgs) (m.RunResult, error) {
	ctx, disarm, err := w.arm(ctx)
	if err != nil {
		return m.RunResult{}, err
	}
	defer disarm()

	snapshot, err := w.replay(w.runDir(args))
	if err != nil {
		slog.Error("Failed to load run", "run_id", args.RunID, "error", err)
		return m.RunResult{}, err
	}

	return w.rerun(ctx, args.Config, args.RunID, snapshot)
}

func (w *workflow) Status(_ context.Context, args RunArgs) (*m.RunSnapshot, error) {
	return w.replay(w.runDir(args))
}

func (w *workflow) Report(ctx context.Context, args ReportArgs) (string, error) {
	snapshot, err := w.Status(ctx, args.RunArgs)
	if err != nil {
		return "", err
	}

	return Render(snapshot, args.Format)
}

func (w *workflow) ListRuns(ctx context.Context, args RunArgs) ([]m.RunListing, error) {
	candidates, err := w.scanRuns(ctx, args.Config.RunRoot)
	if err != nil {
		return nil, err
	}

	listings := make([]m.RunListing, 0, len(candidates))
	for _, c := range candidates {
		listings = append(listings, listing(c))
	}

	return listings, nil
}

func (w *workflow) Inspect(ctx context.Context, args InspectArgs) (MutantDetail, error) {
	snapshot, err := w.Status(ctx, args.RunArgs)
	if err != nil {
		return MutantDetail{}, err
	}

	state, ok := snapshot.Mutants[args.MutantID]
	if !ok {
		return MutantDetail{}, fmt.Errorf("%w: %s in run %s", ErrMutantNotFound, args.MutantID, args.RunID)
	}

	return MutantDetail{
		RunID:  args.RunID,
		RunDir: w.runDir(args.RunArgs),
		State:  state,
		Diff:   MutationDiff(state.Spec),
	}, nil
}

func (w *workflow) ReadArtifact(_ context.Context, args RunArgs, relPath string) ([]byte, error) {
	return w.runStore.ReadArtifact(w.runDir(args), relPath)
}

func (w *workflow) runDir(args RunArgs) string {
	return filepath.Join(args.Config.RunRoot, args.RunID)
}

// arm derives the invocation context. Each invocation gets a fresh context so
// an interrupt delivered to an earlier invocation cannot stop this one.
func (w *workflow) arm(ctx context.Context) (context.Context, context.CancelFunc, error) {
	armed, disarm, err := w.interrupts.Arm(ctx)
	if err != nil {
		slog.Error("Failed to install interrupt handler", "error", err)
		return nil, nil, fmt.Errorf("%w: %w", ErrSignalSetup, err)
	}

	return armed, disarm, nil
}

func (w *workflow) start(ctx context.Context, cfg m.MutationConfig) (m.RunResult, error) {
	runID := m.NewRunID()

	discovered, err := w.engine.Discover(context.WithoutCancel(ctx), cfg)
	if err != nil {
		slog.Error("Failed to discover mutants", "project", cfg.ProjectDir, "error", err)
		return m.RunResult{}, fmt.Errorf("failed to discover mutants: %w", err)
	}

	runDir, err := w.runStore.CreateRunDir(cfg.RunRoot, runID)
	if err != nil {
		slog.Error("Failed to create run directory", "run_id", runID, "error", err)
		return m.RunResult{}, err
	}

	mutants := filterMutants(discovered, cfg.Filter)
	slog.Info("Discovered mutants", "run_id", runID, "discovered", len(discovered), "selected", len(mutants))

	meta := w.env.Collect(context.WithoutCancel(ctx), cfg.ProjectDir)

	events := make([]m.Event, 0, len(mutants)+1)
	events = append(events, m.NewRunStarted(runID, len(mutants), cfg.Snapshot(), &meta))

	for _, spec := range mutants {
		events = append(events, m.NewMutantDiscovered(runID, spec))
	}

	if err := w.append(ctx, runDir, events...); err != nil {
		return m.RunResult{}, err
	}

	metrics.IncRun("new")
	w.DisplayRunPlan(ctx, controller.RunPlan{
		Kind:       controller.PlanNew,
		RunID:      runID,
		ProjectDir: cfg.ProjectDir,
		Queue:      len(mutants),
	})

	return w.execute(ctx, pass{
		runID:    runID,
		runDir:   runDir,
		cfg:      cfg,
		queue:    mutants,
		reason:   reasonInterruptedRun,
		complete: true,
	})
}

func (w *workflow) resume(ctx context.Context, cfg m.MutationConfig, runID string, snapshot *m.RunSnapshot) (m.RunResult, error) {
	runDir := filepath.Join(cfg.RunRoot, runID)
	survivors := snapshot.SurvivorMutants()

	if snapshot.Completed && len(survivors) == 0 {
		w.DisplayRunPlan(ctx, controller.RunPlan{Kind: controller.PlanAlreadyCompleted, RunID: runID})
		return m.RunResult{RunID: runID, RunDir: runDir, Snapshot: snapshot}, nil
	}

	queue := resumeQueue(snapshot)

	kind := controller.PlanResume
	if snapshot.Completed {
		kind = controller.PlanRerunSurvivors
	}

	if err := w.append(ctx, runDir, m.NewRunResumed(runID, len(queue))); err != nil {
		return m.RunResult{}, err
	}

	metrics.IncRun("resume")
	w.DisplayRunPlan(ctx, controller.RunPlan{
		Kind:       kind,
		RunID:      runID,
		ProjectDir: cfg.ProjectDir,
		Queue:      len(queue),
		Survivors:  len(survivors),
	})

	return w.execute(ctx, pass{
		runID:    runID,
		runDir:   runDir,
		cfg:      cfg,
		queue:    queue,
		reason:   reasonInterruptedResume,
		complete: true,
	})
}

func (w *workflow) rerun(ctx context.Context, cfg m.MutationConfig, runID string, snapshot *m.RunSnapshot) (m.RunResult, error) {
	runDir := filepath.Join(cfg.RunRoot, runID)
	queue := survivorQueue(snapshot)

	if len(queue) == 0 {
		w.DisplayRunPlan(ctx, controller.RunPlan{Kind: controller.PlanNoSurvivors, RunID: runID})
		return m.RunResult{RunID: runID, RunDir: runDir, Snapshot: snapshot}, nil
	}

	if err := w.append(ctx, runDir, m.NewRunResumed(runID, len(queue))); err != nil {
		return m.RunResult{}, err
	}

	metrics.IncRun("rerun")
	w.DisplayRunPlan(ctx, controller.RunPlan{
		Kind:       controller.PlanRerunSurvivors,
		RunID:      runID,
		ProjectDir: cfg.ProjectDir,
		Queue:      len(queue),
		Survivors:  len(queue),
	})

	// A rerun never completes a run that was not already complete; for a
	// completed run RunCompleted is appended again so it stays the last event.
	return w.execute(ctx, pass{
		runID:    runID,
		runDir:   runDir,
		cfg:      cfg,
		queue:    queue,
		reason:   reasonInterruptedRerun,
		complete: snapshot.Completed,
	})
}

// execute runs the queue in order. Cancellation of ctx is checked before each
// mutant, never during one.
func (w *workflow) execute(ctx context.Context, p pass) (m.RunResult, error) {
	interrupted := false

	for i, spec := range p.queue {
		if ctx.Err() != nil {
			interrupted = true

			slog.Info("Run interrupted", "run_id", p.runID, "remaining", len(p.queue)-i)

			if err := w.append(ctx, p.runDir, m.NewRunInterrupted(p.runID, p.reason)); err != nil {
				return m.RunResult{}, err
			}

			metrics.IncInterrupted()
			w.DisplayInterrupted(ctx, p.runID, p.reason)

			break
		}

		w.DisplayMutantStarted(ctx, i+1, len(p.queue), spec)

		if err := w.runMutant(ctx, p, spec); err != nil {
			return m.RunResult{}, err
		}
	}

	if !interrupted && p.complete {
		if err := w.append(ctx, p.runDir, m.NewRunCompleted(p.runID)); err != nil {
			return m.RunResult{}, err
		}
	}

	snapshot, err := w.replay(p.runDir)
	if err != nil {
		slog.Error("Failed to replay run", "run_id", p.runID, "error", err)
		return m.RunResult{}, err
	}

	metrics.SetScore(p.runID, m.Summarize(snapshot).MutationScore)

	return m.RunResult{RunID: p.runID, RunDir: p.runDir, Snapshot: snapshot}, nil
}

func (w *workflow) runMutant(ctx context.Context, p pass, spec m.MutantSpec) error {
	startedAt := m.NowMillis()
	if err := w.append(ctx, p.runDir, m.NewMutantStarted(p.runID, spec.ID, startedAt)); err != nil {
		return err
	}

	// The subprocess is not cancelled by an interrupt; the loop stops after it.
	started := time.Now()

	result, err := w.engine.Execute(context.WithoutCancel(ctx), p.cfg, spec)
	if err != nil {
		slog.Error("Failed to execute mutant", "run_id", p.runID, "mutant_id", spec.ID, "error", err)
		result = adapter.ExecutionResult{Outcome: m.ErrorOutcome(err.Error())}
	}

	elapsed := time.Since(started)
	finishedAt := m.NowMillis()
	duration := uint64(elapsed.Milliseconds())

	stdoutPath, stderrPath, err := writeArtifacts(w.runStore, p.runDir, spec.ID, result)
	if err != nil {
		slog.Error("Failed to write artifacts", "run_id", p.runID, "mutant_id", spec.ID, "error", err)
		return fmt.Errorf("failed to write artifacts for %s: %w", spec.ID, err)
	}

	outcome := result.Outcome
	stdoutPreview := m.TruncatePreview(result.Stdout)
	stderrPreview := m.TruncatePreview(result.Stderr)

	finished := m.Event{
		Kind:               m.EventMutantFinished,
		RunID:              p.runID,
		TimestampMs:        finishedAt,
		MutantID:           spec.ID,
		Outcome:            &outcome,
		ExitCode:           result.ExitCode,
		StdoutArtifactPath: stdoutPath,
		StderrArtifactPath: stderrPath,
		StartedAtMs:        &startedAt,
		FinishedAtMs:       &finishedAt,
		DurationMs:         &duration,
		StdoutPreview:      &stdoutPreview,
		StderrPreview:      &stderrPreview,
	}

	if err := w.append(ctx, p.runDir, finished); err != nil {
		return err
	}

	metrics.ObserveMutant(string(outcome.Kind), elapsed.Seconds())
	w.DisplayMutantFinished(ctx, spec, outcome, elapsed)

	return nil
}

// append writes events to the run log and mirrors them to the history sink.
// Only the log write can fail the run.
func (w *workflow) append(ctx context.Context, runDir string, events ...m.Event) error {
	if err := w.eventLog.Append(eventsPath(runDir), events...); err != nil {
		slog.Error("Failed to append events", "run_dir", runDir, "error", err)
		return err
	}

	mirrorCtx := context.WithoutCancel(ctx)

	for _, ev := range events {
		if err := w.history.Record(mirrorCtx, ev); err != nil {
			slog.Warn("Failed to mirror event to history", "run_id", ev.RunID, "event", ev.Kind, "error", err)
		}
	}

	return nil
}
