package adapter

import (
	"errors"
	"fmt"
)

// Engine error kinds. Match them with errors.Is.
var (
	ErrMissingTool = errors.New(
		"cargo-mutants is not installed or not available as `cargo mutants`; install with `cargo install cargo-mutants`",
	)
	ErrCommandFailed = errors.New("command execution failed")
	ErrUnsupported   = errors.New("unsupported cargo-mutants capability")
	ErrEngineIO      = errors.New("engine io error")
)

// EngineError is returned by MutationEngine implementations.
type EngineError struct {
	Kind   error
	Detail string
	Err    error
}

func newEngineError(kind error, detail string, cause error) *EngineError {
	return &EngineError{Kind: kind, Detail: detail, Err: cause}
}

func (e *EngineError) Error() string {
	switch {
	case e.Detail != "" && e.Err != nil:
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Detail, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}

	return e.Kind.Error()
}

// Is matches the error kind.
func (e *EngineError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause.
func (e *EngineError) Unwrap() error {
	return e.Err
}
