package adapter

import (
	"fmt"

	m "github.com/moofone/kitchensink-testing/internal/model"
	"github.com/moofone/kitchensink-testing/pkg"
)

// EventLogAdapter persists run events as JSON lines.
type EventLogAdapter interface {
	// Append durably writes events in order. When it returns nil the events
	// survive a process crash.
	Append(path string, events ...m.Event) error
	// Read returns every decodable event and the number of lines that were
	// skipped because they could not be decoded. A missing log yields an
	// error wrapping fs.ErrNotExist.
	Read(path string) ([]m.Event, int, error)
}

// LocalEventLogAdapter stores events in local files.
type LocalEventLogAdapter struct{}

// NewLocalEventLogAdapter constructs a LocalEventLogAdapter.
func NewLocalEventLogAdapter() *LocalEventLogAdapter {
	return &LocalEventLogAdapter{}
}

// Append implements EventLogAdapter.
func (a *LocalEventLogAdapter) Append(path string, events ...m.Event) error {
	if err := pkg.NewJSONLog[m.Event](path).AppendBatch(events); err != nil {
		return fmt.Errorf("failed to append events to %s: %w", path, err)
	}

	return nil
}

// Read implements EventLogAdapter.
func (a *LocalEventLogAdapter) Read(path string) ([]m.Event, int, error) {
	events := make([]m.Event, 0)

	malformed, err := pkg.NewJSONLog[m.Event](path).Range(func(_ uint64, ev m.Event) error {
		events = append(events, ev)
		return nil
	})
	if err != nil {
		return nil, malformed, fmt.Errorf("failed to read events from %s: %w", path, err)
	}

	return events, malformed, nil
}
