// Package controller provides output adapters for displaying mutation runs.
package controller

import (
	"context"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeBrowse
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to report execution progress.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithBrowseMode sets the UI to interactive browsing of a stored run.
func WithBrowseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBrowse
	}
}

func resolveStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRun}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// PlanKind is the decision the run controller took for an invocation.
type PlanKind int

// Available PlanKind values.
const (
	PlanNew PlanKind = iota
	PlanResume
	PlanRerunSurvivors
	PlanAlreadyCompleted
	PlanNoSurvivors
)

// RunPlan describes what an invocation is about to do.
type RunPlan struct {
	Kind       PlanKind
	RunID      string
	ProjectDir string
	Queue      int
	Survivors  int
}

// UI defines the interface for displaying run progress and stored runs.
// Implementations can use different output methods (simple text, TUI, etc).
//
//nolint:interfacebloat // one method per thing the CLI shows
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayRunPlan(ctx context.Context, plan RunPlan)
	DisplayMutantStarted(ctx context.Context, position, total int, mutant m.MutantSpec)
	DisplayMutantFinished(ctx context.Context, mutant m.MutantSpec, outcome m.MutationOutcome, elapsed time.Duration)
	DisplayInterrupted(ctx context.Context, runID, reason string)
	DisplayRunResult(ctx context.Context, result m.RunResult)
	DisplayMutants(ctx context.Context, snapshot *m.RunSnapshot) error
	DisplayMutant(ctx context.Context, state *m.MutantState, diff string) error
	DisplayRuns(ctx context.Context, runs []m.RunListing) error
}

// NewUI picks the TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
