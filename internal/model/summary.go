package model

// RunSummary aggregates mutant statuses of a snapshot.
type RunSummary struct {
	Total         int     `json:"total" yaml:"total"`
	MutationScore float64 `json:"mutation_score" yaml:"mutation_score"`
	Killed        int     `json:"killed" yaml:"killed"`
	Survived      int     `json:"survived" yaml:"survived"`
	Timeout       int     `json:"timeout" yaml:"timeout"`
	Unviable      int     `json:"unviable" yaml:"unviable"`
	Skipped       int     `json:"skipped" yaml:"skipped"`
	Error         int     `json:"error" yaml:"error"`
	Incomplete    int     `json:"incomplete" yaml:"incomplete"`
}

// Summarize counts statuses and computes the mutation score as a percentage
// of killed mutants among testable ones (total minus skipped and unviable).
// A run with no testable mutants scores 100.
func Summarize(snapshot *RunSnapshot) RunSummary {
	out := RunSummary{Total: len(snapshot.Mutants)}

	for _, st := range snapshot.Mutants {
		switch st.Status {
		case StatusKilled:
			out.Killed++
		case StatusSurvived:
			out.Survived++
		case StatusTimeout:
			out.Timeout++
		case StatusUnviable:
			out.Unviable++
		case StatusSkipped:
			out.Skipped++
		case StatusError:
			out.Error++
		case StatusPending, StatusRunning:
			out.Incomplete++
		}
	}

	testable := out.Total - out.Skipped - out.Unviable
	if testable <= 0 {
		out.MutationScore = 100.0
	} else {
		out.MutationScore = float64(out.Killed) * 100.0 / float64(testable)
	}

	return out
}

// RunListing describes one run found under the run root.
type RunListing struct {
	RunID       string     `json:"run_id" yaml:"run_id"`
	Key         RunKey     `json:"-" yaml:"-"`
	Completed   bool       `json:"completed" yaml:"completed"`
	Interrupted bool       `json:"interrupted" yaml:"interrupted"`
	Summary     RunSummary `json:"summary" yaml:"summary"`
}
