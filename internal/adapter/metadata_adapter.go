package adapter

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

const metadataProbeTimeout = 10 * time.Second

// EnvironmentAdapter gathers reproducibility metadata for a new run.
type EnvironmentAdapter interface {
	Collect(ctx context.Context, projectDir string) m.RunMetadata
}

// LocalEnvironmentAdapter shells out to rustc, cargo and git. Probes that
// fail leave their field empty.
type LocalEnvironmentAdapter struct {
	cargo string
	rustc string
	git   string
}

// NewLocalEnvironmentAdapter constructs a LocalEnvironmentAdapter using the
// binaries found on PATH.
func NewLocalEnvironmentAdapter() *LocalEnvironmentAdapter {
	return &LocalEnvironmentAdapter{cargo: "cargo", rustc: "rustc", git: "git"}
}

// Collect implements EnvironmentAdapter. Probes run concurrently.
func (a *LocalEnvironmentAdapter) Collect(ctx context.Context, projectDir string) m.RunMetadata {
	ctx, cancel := context.WithTimeout(ctx, metadataProbeTimeout)
	defer cancel()

	meta := m.RunMetadata{OS: runtime.GOOS, Arch: runtime.GOARCH}

	probes := []struct {
		dst  *string
		bin  string
		args []string
	}{
		{&meta.RustcVersion, a.rustc, []string{"--version"}},
		{&meta.CargoVersion, a.cargo, []string{"--version"}},
		{&meta.CargoMutantsVersion, a.cargo, []string{"mutants", "--version"}},
		{&meta.GitCommit, a.git, []string{"rev-parse", "HEAD"}},
		{&meta.GitBranch, a.git, []string{"rev-parse", "--abbrev-ref", "HEAD"}},
	}

	var g errgroup.Group

	for _, p := range probes {
		g.Go(func() error {
			*p.dst = probe(ctx, projectDir, p.bin, p.args...)
			return nil
		})
	}

	_ = g.Wait()

	slog.Debug("Collected run metadata", "metadata", meta)

	return meta
}

func probe(ctx context.Context, dir, bin string, args ...string) string {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stdout bytes.Buffer

	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		slog.Debug("Metadata probe failed", "bin", bin, "args", args, "error", err)
		return ""
	}

	return strings.TrimSpace(stdout.String())
}
