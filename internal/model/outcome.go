package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OutcomeKind enumerates the closed set of mutant execution outcomes.
type OutcomeKind string

const (
	// OutcomeKilled means the tests detected the mutation.
	OutcomeKilled OutcomeKind = "killed"
	// OutcomeSurvived means the tests passed with the mutation applied.
	OutcomeSurvived OutcomeKind = "survived"
	// OutcomeTimeout means the test run exceeded its time limit.
	OutcomeTimeout OutcomeKind = "timeout"
	// OutcomeUnviable means the mutated code did not build.
	OutcomeUnviable OutcomeKind = "unviable"
	// OutcomeSkipped means the mutant was intentionally not executed.
	OutcomeSkipped OutcomeKind = "skipped"
	// OutcomeError means execution failed; Message carries the detail.
	OutcomeError OutcomeKind = "error"
)

// MutationOutcome is the result of executing one mutant. Only the error kind
// carries a payload.
type MutationOutcome struct {
	Kind    OutcomeKind
	Message string
}

// Killed returns the killed outcome.
func Killed() MutationOutcome { return MutationOutcome{Kind: OutcomeKilled} }

// Survived returns the survived outcome.
func Survived() MutationOutcome { return MutationOutcome{Kind: OutcomeSurvived} }

// Timeout returns the timeout outcome.
func Timeout() MutationOutcome { return MutationOutcome{Kind: OutcomeTimeout} }

// Unviable returns the unviable outcome.
func Unviable() MutationOutcome { return MutationOutcome{Kind: OutcomeUnviable} }

// Skipped returns the skipped outcome.
func Skipped() MutationOutcome { return MutationOutcome{Kind: OutcomeSkipped} }

// ErrorOutcome returns an error outcome with the given message.
func ErrorOutcome(message string) MutationOutcome {
	return MutationOutcome{Kind: OutcomeError, Message: message}
}

// IsError reports whether the outcome is the error kind.
func (o MutationOutcome) IsError() bool {
	return o.Kind == OutcomeError
}

// Status maps the outcome to the terminal status it produces.
func (o MutationOutcome) Status() MutationStatus {
	switch o.Kind {
	case OutcomeKilled:
		return StatusKilled
	case OutcomeSurvived:
		return StatusSurvived
	case OutcomeTimeout:
		return StatusTimeout
	case OutcomeUnviable:
		return StatusUnviable
	case OutcomeSkipped:
		return StatusSkipped
	case OutcomeError:
		return StatusError
	}

	return StatusError
}

func (o MutationOutcome) String() string {
	if o.Kind == OutcomeError {
		return fmt.Sprintf("error: %s", o.Message)
	}

	return string(o.Kind)
}

type errorPayload struct {
	Message string `json:"message"`
}

// MarshalJSON encodes payload-free kinds as a bare string and the error kind
// as {"error":{"message":"..."}}.
func (o MutationOutcome) MarshalJSON() ([]byte, error) {
	if o.Kind == OutcomeError {
		return json.Marshal(map[string]errorPayload{string(OutcomeError): {Message: o.Message}})
	}

	if !o.Kind.valid() {
		return nil, fmt.Errorf("unknown outcome kind %q", o.Kind)
	}

	return json.Marshal(string(o.Kind))
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *MutationOutcome) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var kind string
		if err := json.Unmarshal(data, &kind); err != nil {
			return err
		}

		k := OutcomeKind(kind)
		if !k.valid() || k == OutcomeError {
			return fmt.Errorf("unknown outcome %q", kind)
		}

		*o = MutationOutcome{Kind: k}

		return nil
	}

	var tagged map[string]errorPayload
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("invalid outcome: %w", err)
	}

	payload, ok := tagged[string(OutcomeError)]
	if !ok || len(tagged) != 1 {
		return fmt.Errorf("invalid outcome object %s", string(data))
	}

	*o = ErrorOutcome(payload.Message)

	return nil
}

func (k OutcomeKind) valid() bool {
	switch k {
	case OutcomeKilled, OutcomeSurvived, OutcomeTimeout, OutcomeUnviable, OutcomeSkipped, OutcomeError:
		return true
	}

	return false
}
