package model

import "sort"

// MutationStatus is the derived state of one mutant in a run.
type MutationStatus int

const (
	// StatusPending means the mutant was discovered but not started.
	StatusPending MutationStatus = iota
	// StatusRunning means the mutant was started without a recorded finish.
	StatusRunning
	// StatusKilled indicates the mutation was detected by tests.
	StatusKilled
	// StatusSurvived indicates the mutation was not detected by tests.
	StatusSurvived
	// StatusTimeout indicates the test run timed out.
	StatusTimeout
	// StatusUnviable indicates the mutated code did not build.
	StatusUnviable
	// StatusSkipped indicates the mutant was skipped.
	StatusSkipped
	// StatusError indicates execution failed.
	StatusError
)

var statusNames = [...]string{
	StatusPending:  "pending",
	StatusRunning:  "running",
	StatusKilled:   "killed",
	StatusSurvived: "survived",
	StatusTimeout:  "timeout",
	StatusUnviable: "unviable",
	StatusSkipped:  "skipped",
	StatusError:    "error",
}

// AllStatuses lists every status in display order.
var AllStatuses = []MutationStatus{
	StatusPending, StatusRunning, StatusKilled, StatusSurvived,
	StatusTimeout, StatusUnviable, StatusSkipped, StatusError,
}

func (s MutationStatus) String() string {
	if int(s) < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}

	return statusNames[s]
}

// IsTerminal reports whether the status is an outcome rather than pending or running.
func (s MutationStatus) IsTerminal() bool {
	return s != StatusPending && s != StatusRunning
}

// MarshalText implements encoding.TextMarshaler.
func (s MutationStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MutantState is the projection of one mutant's events.
type MutantState struct {
	Spec               MutantSpec     `json:"spec"`
	Status             MutationStatus `json:"status"`
	StartedAtMs        *int64         `json:"started_at_ms,omitempty"`
	FinishedAtMs       *int64         `json:"finished_at_ms,omitempty"`
	DurationMs         *uint64        `json:"duration_ms,omitempty"`
	ExitCode           *int           `json:"exit_code,omitempty"`
	StdoutArtifactPath *string        `json:"stdout_artifact_path,omitempty"`
	StderrArtifactPath *string        `json:"stderr_artifact_path,omitempty"`
	LastError          *string        `json:"last_error,omitempty"`
	StdoutPreview      *string        `json:"stdout_preview,omitempty"`
	StderrPreview      *string        `json:"stderr_preview,omitempty"`
}

// RunInfo carries the reproducibility data recorded when the run started.
type RunInfo struct {
	Config   *RunConfigSnapshot `json:"config,omitempty"`
	Metadata *RunMetadata       `json:"metadata,omitempty"`
}

// RunSnapshot is the materialized state of a run after replaying its log.
type RunSnapshot struct {
	RunID          string                  `json:"run_id"`
	Mutants        map[string]*MutantState `json:"mutants"`
	MalformedLines int                     `json:"malformed_lines"`
	Interrupted    bool                    `json:"interrupted"`
	Completed      bool                    `json:"completed"`
	Info           RunInfo                 `json:"info"`

	order []string
}

// NewRunSnapshot returns an empty snapshot.
func NewRunSnapshot() *RunSnapshot {
	return &RunSnapshot{Mutants: make(map[string]*MutantState)}
}

// AddMutant records a newly discovered mutant. Duplicate ids are ignored.
func (s *RunSnapshot) AddMutant(spec MutantSpec) {
	if _, ok := s.Mutants[spec.ID]; ok {
		return
	}

	s.Mutants[spec.ID] = &MutantState{Spec: spec, Status: StatusPending}
	s.order = append(s.order, spec.ID)
}

// PendingMutants returns mutants that are pending or running, ordered by id.
func (s *RunSnapshot) PendingMutants() []MutantSpec {
	return s.collect(func(st MutationStatus) bool { return !st.IsTerminal() })
}

// SurvivorMutants returns mutants whose latest outcome is survived, ordered by id.
func (s *RunSnapshot) SurvivorMutants() []MutantSpec {
	return s.collect(func(st MutationStatus) bool { return st == StatusSurvived })
}

// DiscoveryOrder returns all mutants in the order they were discovered.
func (s *RunSnapshot) DiscoveryOrder() []MutantSpec {
	specs := make([]MutantSpec, 0, len(s.order))
	for _, id := range s.order {
		specs = append(specs, s.Mutants[id].Spec)
	}

	return specs
}

// SortedStates returns every mutant state ordered by id.
func (s *RunSnapshot) SortedStates() []*MutantState {
	states := make([]*MutantState, 0, len(s.Mutants))
	for _, st := range s.Mutants {
		states = append(states, st)
	}

	sort.Slice(states, func(i, j int) bool {
		return states[i].Spec.ID < states[j].Spec.ID
	})

	return states
}

func (s *RunSnapshot) collect(keep func(MutationStatus) bool) []MutantSpec {
	specs := make([]MutantSpec, 0)

	for _, st := range s.SortedStates() {
		if keep(st.Status) {
			specs = append(specs, st.Spec)
		}
	}

	return specs
}
