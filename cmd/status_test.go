package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moofone/kitchensink-testing/internal/domain"
)

func TestStatusCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestCmd(newStatusCmd())

	mockWorkflow.On("Status", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.RunID == "run-1-2-3"
	})).Return(sampleSnapshot(), nil)

	cmd.SetArgs([]string{"status", "run-1-2-3"})
	require.NoError(t, cmd.Execute())
}

func TestStatusCmd_MissingRun(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestCmd(newStatusCmd())

	mockWorkflow.On("Status", mock.Anything, mock.Anything).Return(nil, domain.ErrRunNotFound)

	cmd.SetArgs([]string{"status", "run-9-9-9"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrRunNotFound)
}
