package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// EventKind tags each line of the event log.
type EventKind string

// Event kinds in the order they typically appear in a log.
const (
	EventRunStarted       EventKind = "run_started"
	EventRunResumed       EventKind = "run_resumed"
	EventMutantDiscovered EventKind = "mutant_discovered"
	EventMutantStarted    EventKind = "mutant_started"
	EventMutantFinished   EventKind = "mutant_finished"
	EventRunInterrupted   EventKind = "run_interrupted"
	EventRunCompleted     EventKind = "run_completed"
)

// PreviewMaxBytes bounds the stdout/stderr previews stored in MutantFinished.
const PreviewMaxBytes = 4096

// ErrInvalidEvent is returned when a decoded event is missing fields its kind requires.
var ErrInvalidEvent = errors.New("invalid event")

// Event is one record of the append-only run log. Kind selects which of the
// optional fields are meaningful; every event carries RunID and TimestampMs.
type Event struct {
	Kind        EventKind `json:"event"`
	RunID       string    `json:"run_id"`
	TimestampMs int64     `json:"timestamp_ms"`

	// run_started
	Discovered *int               `json:"discovered,omitempty"`
	Config     *RunConfigSnapshot `json:"config,omitempty"`
	Metadata   *RunMetadata       `json:"metadata,omitempty"`

	// run_resumed
	Remaining *int `json:"remaining,omitempty"`

	// mutant_discovered
	Mutant *MutantSpec `json:"mutant,omitempty"`

	// mutant_started, mutant_finished
	MutantID string `json:"mutant_id,omitempty"`

	// mutant_finished
	Outcome            *MutationOutcome `json:"outcome,omitempty"`
	ExitCode           *int             `json:"exit_code,omitempty"`
	StdoutArtifactPath *string          `json:"stdout_artifact_path,omitempty"`
	StderrArtifactPath *string          `json:"stderr_artifact_path,omitempty"`
	StartedAtMs        *int64           `json:"started_at_ms,omitempty"`
	FinishedAtMs       *int64           `json:"finished_at_ms,omitempty"`
	DurationMs         *uint64          `json:"duration_ms,omitempty"`
	StdoutPreview      *string          `json:"stdout_preview,omitempty"`
	StderrPreview      *string          `json:"stderr_preview,omitempty"`

	// run_interrupted
	Reason string `json:"reason,omitempty"`
}

// NewRunStarted builds a run_started event.
func NewRunStarted(runID string, discovered int, cfg *RunConfigSnapshot, meta *RunMetadata) Event {
	return Event{
		Kind:        EventRunStarted,
		RunID:       runID,
		TimestampMs: NowMillis(),
		Discovered:  &discovered,
		Config:      cfg,
		Metadata:    meta,
	}
}

// NewRunResumed builds a run_resumed event.
func NewRunResumed(runID string, remaining int) Event {
	return Event{Kind: EventRunResumed, RunID: runID, TimestampMs: NowMillis(), Remaining: &remaining}
}

// NewMutantDiscovered builds a mutant_discovered event.
func NewMutantDiscovered(runID string, spec MutantSpec) Event {
	return Event{Kind: EventMutantDiscovered, RunID: runID, TimestampMs: NowMillis(), Mutant: &spec}
}

// NewMutantStarted builds a mutant_started event stamped with startedAtMs.
func NewMutantStarted(runID, mutantID string, startedAtMs int64) Event {
	return Event{Kind: EventMutantStarted, RunID: runID, TimestampMs: startedAtMs, MutantID: mutantID}
}

// NewRunInterrupted builds a run_interrupted event.
func NewRunInterrupted(runID, reason string) Event {
	return Event{Kind: EventRunInterrupted, RunID: runID, TimestampMs: NowMillis(), Reason: reason}
}

// NewRunCompleted builds a run_completed event.
func NewRunCompleted(runID string) Event {
	return Event{Kind: EventRunCompleted, RunID: runID, TimestampMs: NowMillis()}
}

// UnmarshalJSON decodes an event and rejects unknown kinds or missing payloads.
func (e *Event) UnmarshalJSON(data []byte) error {
	type plain Event

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	ev := Event(decoded)
	if err := ev.Validate(); err != nil {
		return err
	}

	*e = ev

	return nil
}

// Validate checks that the fields required by Kind are present.
func (e Event) Validate() error {
	switch e.Kind {
	case EventRunStarted:
		if e.Discovered == nil {
			return fmt.Errorf("%w: %s without discovered", ErrInvalidEvent, e.Kind)
		}
	case EventRunResumed:
		if e.Remaining == nil {
			return fmt.Errorf("%w: %s without remaining", ErrInvalidEvent, e.Kind)
		}
	case EventMutantDiscovered:
		if e.Mutant == nil || e.Mutant.ID == "" {
			return fmt.Errorf("%w: %s without mutant", ErrInvalidEvent, e.Kind)
		}
	case EventMutantStarted:
		if e.MutantID == "" {
			return fmt.Errorf("%w: %s without mutant_id", ErrInvalidEvent, e.Kind)
		}
	case EventMutantFinished:
		if e.MutantID == "" || e.Outcome == nil {
			return fmt.Errorf("%w: %s without mutant_id or outcome", ErrInvalidEvent, e.Kind)
		}
	case EventRunInterrupted, EventRunCompleted:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidEvent, e.Kind)
	}

	return nil
}

// NowMillis returns the current unix time in milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// TruncatePreview shortens output to at most PreviewMaxBytes, marking the cut with "...".
func TruncatePreview(output string) string {
	if len(output) <= PreviewMaxBytes {
		return output
	}

	cut := PreviewMaxBytes - len("...")
	for cut > 0 && !utf8.RuneStart(output[cut]) {
		cut--
	}

	return output[:cut] + "..."
}
