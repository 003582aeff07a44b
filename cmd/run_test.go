package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moofone/kitchensink-testing/internal/domain"
	domainmocks "github.com/moofone/kitchensink-testing/internal/domain/mocks"
	m "github.com/moofone/kitchensink-testing/internal/model"
)

func sampleSnapshot() *m.RunSnapshot {
	snapshot := m.NewRunSnapshot()
	snapshot.RunID = "run-1-2-3"
	snapshot.Completed = true

	snapshot.AddMutant(m.MutantSpec{ID: "m1", Label: "replace + with -"})
	snapshot.AddMutant(m.MutantSpec{ID: "m2", Label: "replace true with false"})
	snapshot.Mutants["m1"].Status = m.StatusKilled
	snapshot.Mutants["m2"].Status = m.StatusSurvived

	return snapshot
}

func sampleResult() m.RunResult {
	return m.RunResult{RunID: "run-1-2-3", RunDir: "runs/run-1-2-3", Snapshot: sampleSnapshot()}
}

// withMockWorkflow swaps the package workflow for a mock for the duration of the test.
func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func newTestCmd(sub *cobra.Command) (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func TestRunCmd_UsesDefaultConfig(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestCmd(newRunCmd())

	mockWorkflow.On("RunNew", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.RunID == "" &&
			args.Config.ProjectDir == "." &&
			args.Config.RunRoot == filepath.Join(".", m.DefaultRunRootDir) &&
			args.Config.Filter == nil &&
			args.Config.TimeoutSecs == nil
	})).Return(sampleResult(), nil)

	cmd.SetArgs([]string{"run"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_FlagsArePassedThrough(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestCmd(newRunCmd())

	mockWorkflow.On("RunNew", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Config.ProjectDir == "/work/crate" &&
			args.Config.RunRoot == "/tmp/runs" &&
			args.Config.Filter != nil && *args.Config.Filter == "lib.rs" &&
			args.Config.TimeoutSecs != nil && *args.Config.TimeoutSecs == 30
	})).Return(sampleResult(), nil)

	cmd.SetArgs([]string{
		"run", "--project", "/work/crate", "--run-root", "/tmp/runs",
		"--filter", "lib.rs", "--timeout-secs", "30",
	})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_PositionalArgsAreRejected(t *testing.T) {
	withMockWorkflow(t)
	cmd, _ := newTestCmd(newRunCmd())

	cmd.SetArgs([]string{"run", "./crate"})
	require.Error(t, cmd.Execute())
}

func TestRunCmd_ErrorIsReturned(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestCmd(newRunCmd())

	mockWorkflow.On("RunNew", mock.Anything, mock.Anything).Return(m.RunResult{}, domain.ErrSignalSetup)

	cmd.SetArgs([]string{"run"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrSignalSetup)
}

func TestResumeCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestCmd(newResumeCmd())

	mockWorkflow.On("Resume", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.RunID == "run-1-2-3"
	})).Return(sampleResult(), nil)

	cmd.SetArgs([]string{"resume", "run-1-2-3"})
	require.NoError(t, cmd.Execute())
}

func TestResumeCmd_RequiresRunID(t *testing.T) {
	withMockWorkflow(t)
	cmd, _ := newTestCmd(newResumeCmd())

	cmd.SetArgs([]string{"resume"})
	require.Error(t, cmd.Execute())
}

func TestResumeCmd_MissingRun(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestCmd(newResumeCmd())

	mockWorkflow.On("Resume", mock.Anything, mock.Anything).Return(m.RunResult{}, domain.ErrRunNotFound)

	cmd.SetArgs([]string{"resume", "run-9-9-9"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrRunNotFound)
}

func TestRerunCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestCmd(newRerunCmd())

	mockWorkflow.On("RerunSurvivors", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.RunID == "run-1-2-3" && args.Config.Filter != nil && *args.Config.Filter == "m2"
	})).Return(sampleResult(), nil)

	cmd.SetArgs([]string{"rerun", "run-1-2-3", "--filter", "m2"})
	require.NoError(t, cmd.Execute())
}

func TestExecuteRun_MirrorsHistoryAndExportsMetrics(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	dir := t.TempDir()

	historyPath := filepath.Join(dir, "history.db")
	metricsPath := filepath.Join(dir, "kitchensink.prom")

	viper.Set(historyDSNKey, "sqlite://"+historyPath)
	viper.Set(metricsFileKey, metricsPath)
	t.Cleanup(func() {
		viper.Set(historyDSNKey, "")
		viper.Set(metricsFileKey, "")
	})

	var used domain.Workflow

	cmd, _ := newTestCmd(&cobra.Command{Use: "noop"})

	err := executeRun(cmd, "", func(_ context.Context, w domain.Workflow, _ domain.RunArgs) (m.RunResult, error) {
		used = w
		return sampleResult(), nil
	})
	require.NoError(t, err)

	assert.NotNil(t, used)
	assert.NotSame(t, mockWorkflow, used)
	assert.FileExists(t, historyPath)
	assert.FileExists(t, metricsPath)
}

func TestExecuteRun_WithoutHistoryUsesSharedWorkflow(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	var used domain.Workflow

	cmd, _ := newTestCmd(&cobra.Command{Use: "noop"})

	err := executeRun(cmd, "run-1-2-3", func(_ context.Context, w domain.Workflow, args domain.RunArgs) (m.RunResult, error) {
		used = w
		assert.Equal(t, "run-1-2-3", args.RunID)

		return sampleResult(), nil
	})
	require.NoError(t, err)

	assert.Same(t, mockWorkflow, used)
}
