package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moofone/kitchensink-testing/internal/domain"
	m "github.com/moofone/kitchensink-testing/internal/model"
)

func sampleDetail() domain.MutantDetail {
	stdout := "artifacts/m1.stdout.log"
	state := &m.MutantState{
		Spec:               m.MutantSpec{ID: "m1", Label: "replace + with -"},
		Status:             m.StatusKilled,
		StdoutArtifactPath: &stdout,
	}

	return domain.MutantDetail{RunID: "run-1-2-3", RunDir: "runs/run-1-2-3", State: state, Diff: "-a + b\n+a - b"}
}

func TestInspectCmd_JSON(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, out := newTestCmd(newInspectCmd())

	mockWorkflow.On("Inspect", mock.Anything, mock.MatchedBy(func(args domain.InspectArgs) bool {
		return args.RunID == "run-1-2-3" && args.MutantID == "m1"
	})).Return(sampleDetail(), nil)

	cmd.SetArgs([]string{"inspect", "run-1-2-3", "m1", "--json"})
	require.NoError(t, cmd.Execute())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	assert.Equal(t, "run-1-2-3", decoded["run_id"])
	assert.Equal(t, "-a + b\n+a - b", decoded["diff"])
	assert.Equal(t, "killed", decoded["mutant"].(map[string]any)["status"])
}

func TestInspectCmd_Log(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, out := newTestCmd(newInspectCmd())

	mockWorkflow.On("Inspect", mock.Anything, mock.Anything).Return(sampleDetail(), nil)
	mockWorkflow.On("ReadArtifact", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.RunID == "run-1-2-3"
	}), "artifacts/m1.stdout.log").Return([]byte("test result: FAILED"), nil)

	cmd.SetArgs([]string{"inspect", "run-1-2-3", "m1", "--log"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "==> artifacts/m1.stdout.log <==\ntest result: FAILED\n", out.String())
}

func TestInspectCmd_LogWithoutArtifacts(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, out := newTestCmd(newInspectCmd())

	detail := sampleDetail()
	detail.State.StdoutArtifactPath = nil
	mockWorkflow.On("Inspect", mock.Anything, mock.Anything).Return(detail, nil)

	cmd.SetArgs([]string{"inspect", "run-1-2-3", "m1", "--log"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "no captured output for mutant m1\n", out.String())
}

func TestInspectCmd_UnknownMutant(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestCmd(newInspectCmd())

	mockWorkflow.On("Inspect", mock.Anything, mock.Anything).Return(domain.MutantDetail{}, domain.ErrMutantNotFound)

	cmd.SetArgs([]string{"inspect", "run-1-2-3", "nope"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrMutantNotFound)
}

func TestInspectCmd_JSONAndLogAreExclusive(t *testing.T) {
	withMockWorkflow(t)
	cmd, _ := newTestCmd(newInspectCmd())

	cmd.SetArgs([]string{"inspect", "run-1-2-3", "m1", "--json", "--log"})
	require.Error(t, cmd.Execute())
}
