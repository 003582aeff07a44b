package domain

import (
	m "github.com/moofone/kitchensink-testing/internal/model"
)

// Project folds an ordered event sequence into a run snapshot. The fold is
// pure: the same events always produce the same snapshot. malformed is the
// number of log lines that could not be decoded.
func Project(events []m.Event, malformed int) *m.RunSnapshot {
	snapshot := m.NewRunSnapshot()
	snapshot.MalformedLines = malformed

	for _, ev := range events {
		apply(snapshot, ev)
	}

	return snapshot
}

func apply(snapshot *m.RunSnapshot, ev m.Event) {
	switch ev.Kind {
	case m.EventRunStarted:
		if snapshot.RunID == "" {
			snapshot.RunID = ev.RunID
		}

		snapshot.Info = m.RunInfo{Config: ev.Config, Metadata: ev.Metadata}
	case m.EventRunResumed:
		if snapshot.RunID == "" {
			snapshot.RunID = ev.RunID
		}
	case m.EventMutantDiscovered:
		snapshot.AddMutant(*ev.Mutant)
	case m.EventMutantStarted:
		state, ok := snapshot.Mutants[ev.MutantID]
		if !ok {
			return
		}

		startedAt := ev.TimestampMs
		state.Status = m.StatusRunning
		state.StartedAtMs = &startedAt
	case m.EventMutantFinished:
		state, ok := snapshot.Mutants[ev.MutantID]
		if !ok {
			return
		}

		applyFinished(state, ev)
	case m.EventRunInterrupted:
		snapshot.Interrupted = true
	case m.EventRunCompleted:
		snapshot.Completed = true
	}
}

func applyFinished(state *m.MutantState, ev m.Event) {
	finishedAt := ev.TimestampMs
	state.FinishedAtMs = &finishedAt

	if ev.StartedAtMs != nil {
		startedAt := *ev.StartedAtMs
		state.StartedAtMs = &startedAt
	}

	state.DurationMs = ev.DurationMs
	if state.DurationMs == nil && state.StartedAtMs != nil && finishedAt >= *state.StartedAtMs {
		d := uint64(finishedAt - *state.StartedAtMs)
		state.DurationMs = &d
	}

	state.ExitCode = ev.ExitCode
	state.StdoutArtifactPath = ev.StdoutArtifactPath
	state.StderrArtifactPath = ev.StderrArtifactPath
	state.StdoutPreview = ev.StdoutPreview
	state.StderrPreview = ev.StderrPreview
	state.Status = ev.Outcome.Status()

	if ev.Outcome.IsError() {
		msg := ev.Outcome.Message
		state.LastError = &msg
	}
}
