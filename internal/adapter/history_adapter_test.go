package adapter

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

func TestNewHistorySink_EmptyDSNIsNop(t *testing.T) {
	sink, err := NewHistorySink(context.Background(), "  ")
	require.NoError(t, err)
	assert.IsType(t, NopHistorySink{}, sink)
	require.NoError(t, sink.Record(context.Background(), m.NewRunCompleted("r")))
	require.NoError(t, sink.Close())
}

func TestSQLiteHistorySink_RecordsEvents(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	sink, err := NewHistorySink(ctx, "sqlite://"+dbPath)
	require.NoError(t, err)

	outcome := m.ErrorOutcome("boom")
	duration := uint64(12)

	require.NoError(t, sink.Record(ctx, m.NewMutantDiscovered("run-1-1-0", m.MutantSpec{ID: "m1"})))
	require.NoError(t, sink.Record(ctx, m.Event{
		Kind:        m.EventMutantFinished,
		RunID:       "run-1-1-0",
		TimestampMs: 5,
		MutantID:    "m1",
		Outcome:     &outcome,
		DurationMs:  &duration,
	}))
	require.NoError(t, sink.Record(ctx, m.NewRunInterrupted("run-1-1-0", "received interrupt signal")))
	require.NoError(t, sink.Close())

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM mutation_history`).Scan(&count))
	assert.Equal(t, 3, count)

	var (
		kind    string
		status  sql.NullString
		message sql.NullString
		dur     sql.NullInt64
	)
	require.NoError(t, db.QueryRow(
		`SELECT event, outcome, message, duration_ms FROM mutation_history WHERE mutant_id = ? AND event = ?`,
		"m1", string(m.EventMutantFinished),
	).Scan(&kind, &status, &message, &dur))
	assert.Equal(t, "error", status.String)
	assert.Equal(t, "boom", message.String)
	assert.Equal(t, int64(12), dur.Int64)
}

func TestSQLiteHistorySink_BarePathReopens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	for range 2 {
		sink, err := NewHistorySink(ctx, dbPath)
		require.NoError(t, err)
		require.NoError(t, sink.Record(ctx, m.NewRunCompleted("run-1-1-0")))
		require.NoError(t, sink.Close())
	}

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM mutation_history`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestPlaceholderStyles(t *testing.T) {
	assert.Equal(t, "?", questionPlaceholders(3))
	assert.Equal(t, "$3", dollarPlaceholders(3))
}
