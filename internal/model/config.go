package model

import "path/filepath"

// DefaultRunRootDir is the run root relative to the project directory.
var DefaultRunRootDir = filepath.Join(".kitchensink-testing", "mutation", "runs")

// MutationConfig holds the settings for one invocation of the run controller.
type MutationConfig struct {
	ProjectDir  string
	RunRoot     string
	Filter      *string
	TimeoutSecs *uint64
}

// NewMutationConfig returns a config rooted at projectDir with the default run root.
func NewMutationConfig(projectDir string) MutationConfig {
	return MutationConfig{
		ProjectDir: projectDir,
		RunRoot:    filepath.Join(projectDir, DefaultRunRootDir),
	}
}

// WithRunRoot sets the run root.
func (c MutationConfig) WithRunRoot(runRoot string) MutationConfig {
	c.RunRoot = runRoot
	return c
}

// WithFilter sets the substring filter.
func (c MutationConfig) WithFilter(filter string) MutationConfig {
	c.Filter = &filter
	return c
}

// WithTimeoutSecs sets the per-mutant timeout hint.
func (c MutationConfig) WithTimeoutSecs(secs uint64) MutationConfig {
	c.TimeoutSecs = &secs
	return c
}

// Snapshot captures the settings that must match for a run to be resumed.
func (c MutationConfig) Snapshot() *RunConfigSnapshot {
	snap := &RunConfigSnapshot{}

	if c.Filter != nil {
		f := *c.Filter
		snap.Filter = &f
	}

	if c.TimeoutSecs != nil {
		t := *c.TimeoutSecs
		snap.TimeoutSecs = &t
	}

	return snap
}

// RunConfigSnapshot is the configuration recorded in RunStarted.
type RunConfigSnapshot struct {
	TimeoutSecs *uint64 `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty"`
	Filter      *string `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// Matches reports whether cfg uses the same filter and timeout as the snapshot.
// A nil snapshot matches only a config with neither set.
func (s *RunConfigSnapshot) Matches(cfg MutationConfig) bool {
	var filter *string

	var timeout *uint64

	if s != nil {
		filter, timeout = s.Filter, s.TimeoutSecs
	}

	return equalPtr(filter, cfg.Filter) && equalPtr(timeout, cfg.TimeoutSecs)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

// RunMetadata describes the environment a run was started in.
type RunMetadata struct {
	RustcVersion        string `json:"rustc_version,omitempty" yaml:"rustc_version,omitempty"`
	CargoVersion        string `json:"cargo_version,omitempty" yaml:"cargo_version,omitempty"`
	CargoMutantsVersion string `json:"cargo_mutants_version,omitempty" yaml:"cargo_mutants_version,omitempty"`
	GitCommit           string `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	GitBranch           string `json:"git_branch,omitempty" yaml:"git_branch,omitempty"`
	OS                  string `json:"os" yaml:"os"`
	Arch                string `json:"arch" yaml:"arch"`
}
