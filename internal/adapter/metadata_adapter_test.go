package adapter

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalEnvironmentAdapter_Collect(t *testing.T) {
	git, _ := fakeCargo(t, `case "$2" in
--abbrev-ref) echo "main";;
*) echo "  abc123  ";;
esac`)
	cargo, _ := fakeCargo(t, `case "$1" in
mutants) echo "cargo-mutants 25.0.0";;
*) echo "cargo 1.80.0";;
esac`)

	a := &LocalEnvironmentAdapter{
		cargo: cargo,
		rustc: filepath.Join(t.TempDir(), "missing-rustc"),
		git:   git,
	}

	meta := a.Collect(context.Background(), t.TempDir())
	assert.Equal(t, "abc123", meta.GitCommit)
	assert.Equal(t, "main", meta.GitBranch)
	assert.Equal(t, "cargo 1.80.0", meta.CargoVersion)
	assert.Equal(t, "cargo-mutants 25.0.0", meta.CargoMutantsVersion)
	assert.Empty(t, meta.RustcVersion)
	assert.Equal(t, runtime.GOOS, meta.OS)
	assert.Equal(t, runtime.GOARCH, meta.Arch)
}
