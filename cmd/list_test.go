package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moofone/kitchensink-testing/internal/domain"
)

func TestListCmd_JSON(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, out := newTestCmd(newListCmd())

	mockWorkflow.On("Status", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.RunID == "run-1-2-3"
	})).Return(sampleSnapshot(), nil)

	cmd.SetArgs([]string{"list", "run-1-2-3", "--json"})
	require.NoError(t, cmd.Execute())

	var states []struct {
		Spec struct {
			ID string `json:"id"`
		} `json:"spec"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &states))

	require.Len(t, states, 2)
	assert.Equal(t, "m1", states[0].Spec.ID)
	assert.Equal(t, "killed", states[0].Status)
	assert.Equal(t, "survived", states[1].Status)
}

func TestListCmd_RequiresRunID(t *testing.T) {
	withMockWorkflow(t)
	cmd, _ := newTestCmd(newListCmd())

	cmd.SetArgs([]string{"list"})
	require.Error(t, cmd.Execute())
}
