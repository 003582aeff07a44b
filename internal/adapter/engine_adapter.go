// Package adapter contains infrastructure adapters for the kitchensink CLI.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

// ExecutionResult is the captured result of running one mutant.
type ExecutionResult struct {
	Outcome  m.MutationOutcome
	ExitCode *int
	Stdout   string
	Stderr   string
}

// MutationEngine discovers mutants and executes them one at a time.
type MutationEngine interface {
	Discover(ctx context.Context, cfg m.MutationConfig) ([]m.MutantSpec, error)
	Execute(ctx context.Context, cfg m.MutationConfig, mutant m.MutantSpec) (ExecutionResult, error)
}

type selectorMode int

const (
	selectorUnknown selectorMode = iota
	selectorMutantFlag
	selectorRegex
)

// CargoMutantsEngine drives the `cargo mutants` CLI.
type CargoMutantsEngine struct {
	binary string

	mu   sync.Mutex
	mode selectorMode
}

// CargoMutantsOption configures a CargoMutantsEngine.
type CargoMutantsOption func(*CargoMutantsEngine)

// WithCargoBinary overrides the cargo executable (default "cargo").
func WithCargoBinary(path string) CargoMutantsOption {
	return func(e *CargoMutantsEngine) {
		e.binary = path
	}
}

// NewCargoMutantsEngine constructs a CargoMutantsEngine.
func NewCargoMutantsEngine(opts ...CargoMutantsOption) *CargoMutantsEngine {
	e := &CargoMutantsEngine{binary: "cargo"}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

type commandOutput struct {
	stdout   string
	stderr   string
	exitCode int
	// signaled is set when the process was killed by a signal and has no exit status.
	signaled bool
}

func (e *CargoMutantsEngine) run(ctx context.Context, dir string, args ...string) (commandOutput, error) {
	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := commandOutput{stdout: stdout.String(), stderr: stderr.String()}

	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.exitCode = exitErr.ExitCode()
		out.signaled = exitErr.ProcessState != nil && !exitErr.ProcessState.Exited()

		return out, nil
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return out, newEngineError(ErrMissingTool, "", err)
	}

	return out, newEngineError(ErrEngineIO, strings.Join(args, " "), err)
}

// Discover lists mutants with `cargo mutants --list`.
func (e *CargoMutantsEngine) Discover(ctx context.Context, cfg m.MutationConfig) ([]m.MutantSpec, error) {
	out, err := e.run(ctx, cfg.ProjectDir, "mutants", "--list")
	if err != nil {
		slog.Error("Failed to list mutants", "project", cfg.ProjectDir, "error", err)
		return nil, err
	}

	if out.exitCode != 0 {
		if outputMissingCommand(out.stderr) {
			return nil, newEngineError(ErrMissingTool, "", nil)
		}

		return nil, newEngineError(ErrCommandFailed, out.stderr, nil)
	}

	mutants := parseListing(out.stdout)
	if len(mutants) == 0 {
		return nil, newEngineError(ErrCommandFailed, "`cargo mutants --list` returned no mutants", nil)
	}

	slog.Debug("Discovered mutants", "project", cfg.ProjectDir, "count", len(mutants))

	return mutants, nil
}

func parseListing(stdout string) []m.MutantSpec {
	mutants := make([]m.MutantSpec, 0)

	for idx, raw := range strings.Split(stdout, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "Found ") || strings.HasPrefix(line, "Listing ") {
			continue
		}

		file, lineNo, desc := parseLabel(line)
		mutants = append(mutants, m.MutantSpec{
			ID:           mutantID(idx, line),
			Label:        line,
			Selector:     line,
			SourceFile:   file,
			SourceLine:   lineNo,
			MutationType: m.ParseMutationType(line),
			MutatedCode:  desc,
		})
	}

	return mutants
}

// Execute runs exactly one mutant. It never falls back to running the whole
// suite: if the tool cannot select a single mutant, ErrUnsupported is returned.
func (e *CargoMutantsEngine) Execute(ctx context.Context, cfg m.MutationConfig, mutant m.MutantSpec) (ExecutionResult, error) {
	mode, err := e.selectorMode(ctx, cfg.ProjectDir)
	if err != nil {
		return ExecutionResult{}, err
	}

	args := []string{"mutants", "--in-place", "--no-times"}

	switch mode {
	case selectorMutantFlag:
		args = append(args, "--mutant", mutant.Selector)
	case selectorRegex:
		args = append(args, "--re", anchoredSelector(mutant.Selector))
	case selectorUnknown:
		return ExecutionResult{}, newEngineError(ErrUnsupported, "no single-mutant selector (--mutant or --re)", nil)
	}

	if cfg.TimeoutSecs != nil {
		args = append(args, "--timeout", strconv.FormatUint(*cfg.TimeoutSecs, 10))
	}

	slog.Debug("Executing mutant", "id", mutant.ID, "args", args)

	out, err := e.run(ctx, cfg.ProjectDir, args...)
	if err != nil {
		return ExecutionResult{}, err
	}

	if out.exitCode != 0 && outputMissingCommand(out.stderr) {
		return ExecutionResult{}, newEngineError(ErrMissingTool, "", nil)
	}

	var exitCode *int
	if !out.signaled {
		exitCode = &out.exitCode
	}

	return ExecutionResult{
		Outcome:  ClassifyOutcome(out.exitCode, out.stdout+out.stderr),
		ExitCode: exitCode,
		Stdout:   out.stdout,
		Stderr:   out.stderr,
	}, nil
}

// selectorMode probes `cargo mutants --help` once per engine and caches the answer.
func (e *CargoMutantsEngine) selectorMode(ctx context.Context, dir string) (selectorMode, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != selectorUnknown {
		return e.mode, nil
	}

	out, err := e.run(ctx, dir, "mutants", "--help")
	if err != nil {
		return selectorUnknown, err
	}

	if out.exitCode != 0 && outputMissingCommand(out.stderr) {
		return selectorUnknown, newEngineError(ErrMissingTool, "", nil)
	}

	help := out.stdout + out.stderr

	switch {
	case strings.Contains(help, "--mutant"):
		e.mode = selectorMutantFlag
	case strings.Contains(help, "--re"):
		e.mode = selectorRegex
	default:
		return selectorUnknown, nil
	}

	slog.Debug("Probed cargo-mutants selector support", "mode", e.mode)

	return e.mode, nil
}

func (s selectorMode) String() string {
	switch s {
	case selectorMutantFlag:
		return "--mutant"
	case selectorRegex:
		return "--re"
	case selectorUnknown:
	}

	return fmt.Sprintf("unknown(%d)", int(s))
}
