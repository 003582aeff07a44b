package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moofone/kitchensink-testing/internal/domain"
)

func TestViewCmd_ShowsMutants(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, out := newTestCmd(newViewCmd())

	mockWorkflow.On("Status", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.RunID == "run-1-2-3"
	})).Return(sampleSnapshot(), nil)

	cmd.SetArgs([]string{"view", "run-1-2-3"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Run run-1-2-3")
	assert.Contains(t, out.String(), "m1")
	assert.Contains(t, out.String(), "replace true with false")
}

func TestViewCmd_ShowsOneMutant(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, out := newTestCmd(newViewCmd())

	mockWorkflow.On("Inspect", mock.Anything, mock.MatchedBy(func(args domain.InspectArgs) bool {
		return args.RunID == "run-1-2-3" && args.MutantID == "m1"
	})).Return(sampleDetail(), nil)

	cmd.SetArgs([]string{"view", "run-1-2-3", "m1"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Mutant m1")
}

func TestViewCmd_RequiresRunID(t *testing.T) {
	withMockWorkflow(t)
	cmd, _ := newTestCmd(newViewCmd())

	cmd.SetArgs([]string{"view"})
	require.Error(t, cmd.Execute())
}
