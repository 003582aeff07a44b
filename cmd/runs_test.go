package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

func TestRunsCmd_JSON(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, out := newTestCmd(newRunsCmd())

	runs := []m.RunListing{
		{RunID: "run-2-1-0", Completed: false, Summary: m.RunSummary{Total: 3, Incomplete: 3}},
		{RunID: "run-1-1-0", Completed: true, Summary: m.RunSummary{Total: 2, Killed: 2, MutationScore: 100}},
	}
	mockWorkflow.On("ListRuns", mock.Anything, mock.Anything).Return(runs, nil)

	cmd.SetArgs([]string{"runs", "--json"})
	require.NoError(t, cmd.Execute())

	var decoded []m.RunListing
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	require.Len(t, decoded, 2)
	assert.Equal(t, "run-2-1-0", decoded[0].RunID)
	assert.InDelta(t, 100.0, decoded[1].Summary.MutationScore, 0.001)
}

func TestRunsCmd_Empty(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestCmd(newRunsCmd())

	mockWorkflow.On("ListRuns", mock.Anything, mock.Anything).Return([]m.RunListing{}, nil)

	cmd.SetArgs([]string{"runs"})
	require.NoError(t, cmd.Execute())
}
