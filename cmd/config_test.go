package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "kitchensink", configBaseName)
	assert.Equal(t, "kitchensink.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "project", projectFlagName)
	assert.Equal(t, "run-root", runRootFlagName)
	assert.Equal(t, "filter", filterFlagName)
	assert.Equal(t, "timeout-secs", timeoutSecsFlagName)
	assert.Equal(t, "run_root", runRootKey)
	assert.Equal(t, "timeout_secs", timeoutSecsKey)
	assert.Equal(t, "history.dsn", historyDSNKey)
	assert.Equal(t, "metrics.file", metricsFileKey)
	assert.Equal(t, ".kitchensink.log", defaultLogFilename)
	assert.Equal(t, "KITCHENSINK", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestMutationConfig_Defaults(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{}))

	cfg := mutationConfig()

	assert.Equal(t, ".", cfg.ProjectDir)
	assert.Equal(t, filepath.Join(".", m.DefaultRunRootDir), cfg.RunRoot)
	assert.Nil(t, cfg.Filter)
	assert.Nil(t, cfg.TimeoutSecs)
}

func TestMutationConfig_RunRootFollowsProject(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--project", "/work/crate"}))

	cfg := mutationConfig()

	assert.Equal(t, "/work/crate", cfg.ProjectDir)
	assert.Equal(t, filepath.Join("/work/crate", m.DefaultRunRootDir), cfg.RunRoot)
}

func TestMutationConfig_FromEnv(t *testing.T) {
	t.Setenv("KITCHENSINK_FILTER", "lib.rs")
	t.Setenv("KITCHENSINK_TIMEOUT_SECS", "45")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{}))

	cfg := mutationConfig()

	require.NotNil(t, cfg.Filter)
	assert.Equal(t, "lib.rs", *cfg.Filter)
	require.NotNil(t, cfg.TimeoutSecs)
	assert.Equal(t, uint64(45), *cfg.TimeoutSecs)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.in, slog.LevelInfo))
		})
	}
}
