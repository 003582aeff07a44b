package model

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

const (
	// EventsFileName is the log file inside each run directory.
	EventsFileName = "events.jsonl"
	// ArtifactsDirName holds captured subprocess output inside each run directory.
	ArtifactsDirName = "artifacts"
)

var runSequence atomic.Uint64

// RunKey is the parsed form of a run id, used to order runs by recency.
type RunKey struct {
	TimestampMs int64
	PID         uint32
	Sequence    uint64
}

// NewRunID returns a fresh id of the form run-<unix_ms>-<pid>-<sequence>.
func NewRunID() string {
	seq := runSequence.Add(1) - 1
	return fmt.Sprintf("run-%d-%d-%d", NowMillis(), os.Getpid(), seq)
}

// ParseRunKey parses a run id; ok is false for names that are not run ids.
func ParseRunKey(runID string) (RunKey, bool) {
	parts := strings.Split(runID, "-")
	if len(parts) != 4 || parts[0] != "run" {
		return RunKey{}, false
	}

	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return RunKey{}, false
	}

	pid, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return RunKey{}, false
	}

	seq, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return RunKey{}, false
	}

	return RunKey{TimestampMs: ts, PID: uint32(pid), Sequence: seq}, true
}

// NewerThan compares keys by timestamp, then pid, then sequence.
func (k RunKey) NewerThan(other RunKey) bool {
	if k.TimestampMs != other.TimestampMs {
		return k.TimestampMs > other.TimestampMs
	}

	if k.PID != other.PID {
		return k.PID > other.PID
	}

	return k.Sequence > other.Sequence
}

// RunResult is returned by the run, resume and rerun operations.
type RunResult struct {
	RunID    string
	RunDir   string
	Snapshot *RunSnapshot
}
