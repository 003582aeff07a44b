// Package model defines the data structures for mutation runs.
package model

import "strings"

// MutationType represents the category of mutation.
type MutationType string

const (
	// MutationArithmetic represents arithmetic operator mutations (+, -, *, /, %).
	MutationArithmetic MutationType = "arithmetic"
	// MutationComparison represents comparison operator mutations (==, !=, <, >, <=, >=).
	MutationComparison MutationType = "comparison"
	// MutationLogical represents logical operator mutations (&&, ||, !).
	MutationLogical MutationType = "logical"
	// MutationBoolean represents boolean literal mutations (true <-> false).
	MutationBoolean MutationType = "boolean"
	// MutationReturnValue represents replaced function return values.
	MutationReturnValue MutationType = "return_value"
	// MutationMethodCall represents removed or replaced calls.
	MutationMethodCall MutationType = "method_call"
	// MutationAssignment represents assignment mutations.
	MutationAssignment MutationType = "assignment"
	// MutationBoundary represents boundary condition mutations.
	MutationBoundary MutationType = "boundary"
	// MutationNegation represents inserted or removed negations.
	MutationNegation MutationType = "negation"
	// MutationUnknown is used when the label cannot be classified.
	MutationUnknown MutationType = "unknown"
)

// ParseMutationType classifies a mutation label on a best-effort basis.
//
//nolint:cyclop // keyword precedence reads best as one flat list
func ParseMutationType(label string) MutationType {
	lower := strings.ToLower(label)

	if strings.Contains(lower, "replace ") || strings.Contains(lower, " -> ") {
		if strings.ContainsAny(lower, "+-*/%") {
			if containsAnyOf(lower, "==", "!=", "<", ">") {
				return MutationComparison
			}

			return MutationArithmetic
		}

		if containsAnyOf(lower, "&&", "||", "!") {
			return MutationLogical
		}

		if containsAnyOf(lower, "true", "false") {
			return MutationBoolean
		}
	}

	switch {
	case strings.Contains(lower, "return"):
		return MutationReturnValue
	case containsAnyOf(lower, "call", "method"):
		return MutationMethodCall
	case containsAnyOf(lower, "assign", "="):
		return MutationAssignment
	case containsAnyOf(lower, "boundary", "off by one"):
		return MutationBoundary
	case containsAnyOf(lower, "negate", "negation"):
		return MutationNegation
	}

	return MutationUnknown
}

func containsAnyOf(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}

// MutantSpec describes one candidate mutation as reported by the mutation engine.
// It never changes after discovery.
type MutantSpec struct {
	ID           string       `json:"id" yaml:"id"`
	Label        string       `json:"label" yaml:"label"`
	Selector     string       `json:"selector" yaml:"selector"`
	SourceFile   string       `json:"source_file,omitempty" yaml:"source_file,omitempty"`
	SourceLine   uint32       `json:"source_line,omitempty" yaml:"source_line,omitempty"`
	MutationType MutationType `json:"mutation_type,omitempty" yaml:"mutation_type,omitempty"`
	OriginalCode string       `json:"original_code,omitempty" yaml:"original_code,omitempty"`
	MutatedCode  string       `json:"mutated_code,omitempty" yaml:"mutated_code,omitempty"`
}

// Type returns the mutation type, defaulting to MutationUnknown.
func (s MutantSpec) Type() MutationType {
	if s.MutationType == "" {
		return MutationUnknown
	}

	return s.MutationType
}
