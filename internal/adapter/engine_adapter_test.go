package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

// fakeCargo writes an executable shell script that stands in for cargo and
// returns its path. The script records each invocation's arguments in calls.log.
func fakeCargo(t *testing.T, body string) (string, string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a POSIX shell")
	}

	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	script := "#!/bin/sh\nprintf '%s\\n' \"$*\" >> " + logPath + "\n" + body + "\n"
	path := filepath.Join(dir, "cargo")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return path, logPath
}

const listingBody = `case "$2" in
--list)
  echo "Found 3 mutants to test"
  echo ""
  echo "src/lib.rs:10:5: replace + with -"
  echo "src/lib.rs:20:9: replace > with >="
  echo "Listing done"
  exit 0;;
esac`

func TestCargoMutantsEngine_Discover(t *testing.T) {
	bin, _ := fakeCargo(t, listingBody)
	engine := NewCargoMutantsEngine(WithCargoBinary(bin))
	cfg := m.NewMutationConfig(t.TempDir())

	mutants, err := engine.Discover(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, mutants, 2)

	first := mutants[0]
	assert.Equal(t, "src/lib.rs:10:5: replace + with -", first.Label)
	assert.Equal(t, first.Label, first.Selector)
	assert.Equal(t, "src/lib.rs", first.SourceFile)
	assert.Equal(t, uint32(10), first.SourceLine)
	assert.Equal(t, "replace + with -", first.MutatedCode)
	assert.Equal(t, m.MutationArithmetic, first.MutationType)
	assert.True(t, strings.HasPrefix(first.ID, "m"))
	assert.NotEqual(t, first.ID, mutants[1].ID)

	again, err := engine.Discover(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, mutants, again)
}

func TestCargoMutantsEngine_DiscoverMissingSubcommand(t *testing.T) {
	bin, _ := fakeCargo(t, "echo \"error: no such command: \\`mutants\\`\" >&2\nexit 101")
	engine := NewCargoMutantsEngine(WithCargoBinary(bin))

	_, err := engine.Discover(context.Background(), m.NewMutationConfig(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTool))
}

func TestCargoMutantsEngine_DiscoverMissingBinary(t *testing.T) {
	engine := NewCargoMutantsEngine(WithCargoBinary(filepath.Join(t.TempDir(), "no-such-cargo")))

	_, err := engine.Discover(context.Background(), m.NewMutationConfig(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTool))
}

func TestCargoMutantsEngine_DiscoverFailures(t *testing.T) {
	bin, _ := fakeCargo(t, "echo 'could not compile' >&2\nexit 1")
	_, err := NewCargoMutantsEngine(WithCargoBinary(bin)).Discover(context.Background(), m.NewMutationConfig(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCommandFailed))
	assert.Contains(t, err.Error(), "could not compile")

	bin, _ = fakeCargo(t, "echo 'Found 0 mutants to test'\nexit 0")
	_, err = NewCargoMutantsEngine(WithCargoBinary(bin)).Discover(context.Background(), m.NewMutationConfig(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCommandFailed))
}

func TestCargoMutantsEngine_ExecuteWithMutantFlag(t *testing.T) {
	bin, calls := fakeCargo(t, `case "$2" in
--help) echo "  --mutant <NAME>  run one mutant"; exit 0;;
esac
echo "1 mutant tested: 1 caught"
exit 0`)
	engine := NewCargoMutantsEngine(WithCargoBinary(bin))
	cfg := m.NewMutationConfig(t.TempDir()).WithTimeoutSecs(30)
	spec := m.MutantSpec{ID: "m1", Label: "src/a.rs:1:1: x", Selector: "src/a.rs:1:1: x"}

	res, err := engine.Execute(context.Background(), cfg, spec)
	require.NoError(t, err)
	assert.Equal(t, m.Killed(), res.Outcome)
	require.NotNil(t, res.ExitCode)
	assert.Equal(t, 0, *res.ExitCode)
	assert.Contains(t, res.Stdout, "caught")

	_, err = engine.Execute(context.Background(), cfg, spec)
	require.NoError(t, err)

	data, err := os.ReadFile(calls)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "help is probed once per engine")
	assert.Equal(t, "mutants --help", lines[0])
	assert.Equal(t, "mutants --in-place --no-times --mutant src/a.rs:1:1: x --timeout 30", lines[1])
}

func TestCargoMutantsEngine_ExecuteFallsBackToRegex(t *testing.T) {
	bin, calls := fakeCargo(t, `case "$2" in
--help) echo "  --re <REGEX>  filter mutants"; exit 0;;
esac
echo "MISSED src/a.rs:1:1"
exit 2`)
	engine := NewCargoMutantsEngine(WithCargoBinary(bin))
	spec := m.MutantSpec{ID: "m1", Selector: "src/a.rs:1:1: replace > with >="}

	res, err := engine.Execute(context.Background(), m.NewMutationConfig(t.TempDir()), spec)
	require.NoError(t, err)
	assert.Equal(t, m.Survived(), res.Outcome)
	assert.Equal(t, 2, *res.ExitCode)

	data, err := os.ReadFile(calls)
	require.NoError(t, err)
	assert.Contains(t, string(data), `--re ^src/a\.rs:1:1: replace > with >=$`)
}

func TestCargoMutantsEngine_ExecuteKilledBySignalHasNoExitCode(t *testing.T) {
	bin, _ := fakeCargo(t, `case "$2" in
--help) echo "  --mutant <NAME>  run one mutant"; exit 0;;
esac
echo "building"
kill -9 $$`)
	engine := NewCargoMutantsEngine(WithCargoBinary(bin))

	res, err := engine.Execute(context.Background(), m.NewMutationConfig(t.TempDir()), m.MutantSpec{ID: "m1", Selector: "s"})
	require.NoError(t, err)

	assert.Nil(t, res.ExitCode)
	assert.Equal(t, m.OutcomeError, res.Outcome.Kind)
	assert.Contains(t, res.Stdout, "building")
}

func TestCargoMutantsEngine_ExecuteUnsupported(t *testing.T) {
	bin, calls := fakeCargo(t, `echo "usage: cargo mutants [OPTIONS]"; exit 0`)
	engine := NewCargoMutantsEngine(WithCargoBinary(bin))

	_, err := engine.Execute(context.Background(), m.NewMutationConfig(t.TempDir()), m.MutantSpec{ID: "m1", Selector: "s"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupported))

	data, err := os.ReadFile(calls)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "--in-place", "must not run the whole suite")
}

func TestCargoMutantsEngine_ExecuteMissingTool(t *testing.T) {
	bin, _ := fakeCargo(t, "echo \"error: unrecognized subcommand 'mutants'\" >&2\nexit 1")

	_, err := NewCargoMutantsEngine(WithCargoBinary(bin)).
		Execute(context.Background(), m.NewMutationConfig(t.TempDir()), m.MutantSpec{ID: "m1", Selector: "s"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTool))
}

func TestEngineError_Message(t *testing.T) {
	err := newEngineError(ErrCommandFailed, "stderr text", nil)
	assert.Equal(t, "command execution failed: stderr text", err.Error())
	assert.True(t, errors.Is(err, ErrCommandFailed))
	assert.False(t, errors.Is(err, ErrUnsupported))

	cause := errors.New("permission denied")
	err = newEngineError(ErrEngineIO, "", cause)
	assert.True(t, errors.Is(err, cause))
}
