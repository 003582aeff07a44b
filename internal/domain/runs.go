package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

// ErrRunNotFound is returned when a run has no event log.
var ErrRunNotFound = fmt.Errorf("run not found: %w", fs.ErrNotExist)

const scanConcurrency = 4

// runCandidate is a run directory found under the run root.
type runCandidate struct {
	runID    string
	key      m.RunKey
	snapshot *m.RunSnapshot
}

func eventsPath(runDir string) string {
	return filepath.Join(runDir, m.EventsFileName)
}

// replay loads the snapshot of the run stored in runDir.
func (w *workflow) replay(runDir string) (*m.RunSnapshot, error) {
	events, malformed, err := w.eventLog.Read(eventsPath(runDir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, filepath.Base(runDir))
	}

	if err != nil {
		return nil, err
	}

	if malformed > 0 {
		slog.Warn("Skipped malformed event log lines", "run_dir", runDir, "lines", malformed)
	}

	return Project(events, malformed), nil
}

// scanRuns replays every run under the run root, newest first. Directories
// that are not run ids or whose log cannot be read are skipped.
func (w *workflow) scanRuns(ctx context.Context, runRoot string) ([]runCandidate, error) {
	names, err := w.runStore.ListRunDirs(runRoot)
	if err != nil {
		slog.Error("Failed to list runs", "run_root", runRoot, "error", err)
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	var (
		mu         sync.Mutex
		candidates []runCandidate
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(scanConcurrency)

	for _, name := range names {
		key, ok := m.ParseRunKey(name)
		if !ok {
			continue
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			snapshot, err := w.replay(filepath.Join(runRoot, name))
			if err != nil {
				slog.Debug("Skipping unreadable run", "run_id", name, "error", err)
				return nil
			}

			mu.Lock()
			candidates = append(candidates, runCandidate{runID: name, key: key, snapshot: snapshot})
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].key.NewerThan(candidates[j].key)
	})

	return candidates, nil
}

// latestIncomplete returns the newest run that has not completed, still has
// pending mutants and was started with a matching configuration.
func latestIncomplete(candidates []runCandidate, cfg m.MutationConfig) (runCandidate, bool) {
	for _, c := range candidates {
		if c.snapshot.Completed || len(c.snapshot.PendingMutants()) == 0 {
			continue
		}

		if c.snapshot.Info.Config.Matches(cfg) {
			return c, true
		}
	}

	return runCandidate{}, false
}

// latestCompletedWithSurvivors returns the newest completed run with at
// least one survivor and a matching configuration.
func latestCompletedWithSurvivors(candidates []runCandidate, cfg m.MutationConfig) (runCandidate, bool) {
	for _, c := range candidates {
		if !c.snapshot.Completed || len(c.snapshot.SurvivorMutants()) == 0 {
			continue
		}

		if c.snapshot.Info.Config.Matches(cfg) {
			return c, true
		}
	}

	return runCandidate{}, false
}

func listing(c runCandidate) m.RunListing {
	return m.RunListing{
		RunID:       c.runID,
		Key:         c.key,
		Completed:   c.snapshot.Completed,
		Interrupted: c.snapshot.Interrupted,
		Summary:     m.Summarize(c.snapshot),
	}
}
