package domain

import (
	"strings"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

// Reasons recorded in RunInterrupted for each kind of invocation.
const (
	reasonInterruptedRun    = "received interrupt signal"
	reasonInterruptedResume = "received interrupt signal during resume"
	reasonInterruptedRerun  = "received interrupt signal during survivor rerun"
)

// resumeQueue orders the work for a resumed run: survivors first, then the
// remaining pending mutants. Pending mutants are skipped for runs that already completed.
func resumeQueue(snapshot *m.RunSnapshot) []m.MutantSpec {
	queue := snapshot.SurvivorMutants()
	if snapshot.Completed {
		return queue
	}

	seen := make(map[string]struct{}, len(queue))
	for _, spec := range queue {
		seen[spec.ID] = struct{}{}
	}

	for _, spec := range snapshot.PendingMutants() {
		if _, ok := seen[spec.ID]; ok {
			continue
		}

		seen[spec.ID] = struct{}{}
		queue = append(queue, spec)
	}

	return queue
}

// survivorQueue is exactly the survivor set of the run.
func survivorQueue(snapshot *m.RunSnapshot) []m.MutantSpec {
	return snapshot.SurvivorMutants()
}

// filterMutants keeps mutants whose id, label or selector contains filter.
func filterMutants(mutants []m.MutantSpec, filter *string) []m.MutantSpec {
	if filter == nil {
		return mutants
	}

	kept := make([]m.MutantSpec, 0, len(mutants))

	for _, spec := range mutants {
		if strings.Contains(spec.ID, *filter) ||
			strings.Contains(spec.Label, *filter) ||
			strings.Contains(spec.Selector, *filter) {
			kept = append(kept, spec)
		}
	}

	return kept
}
