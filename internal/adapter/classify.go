package adapter

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"

	m "github.com/moofone/kitchensink-testing/internal/model"
)

// ClassifyOutcome maps the combined tool output and exit code of a single
// mutant run to an outcome. Keywords are checked in a fixed order; the first
// match wins, so output mentioning both "timeout" and "killed" is a timeout.
// This depends on cargo-mutants wording and breaks if the tool rewords it.
func ClassifyOutcome(exitCode int, text string) m.MutationOutcome {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "found 0 mutants to test"),
		strings.Contains(lower, "no mutants found under the active filters"):
		return m.ErrorOutcome(strings.TrimSpace(text))
	case strings.Contains(lower, "timeout"):
		return m.Timeout()
	case strings.Contains(lower, "unviable"):
		return m.Unviable()
	case strings.Contains(lower, "survived"), strings.Contains(lower, "missed"):
		return m.Survived()
	case strings.Contains(lower, "killed"), strings.Contains(lower, "caught"):
		return m.Killed()
	case exitCode == 0:
		return m.Killed()
	}

	return m.ErrorOutcome(strings.TrimSpace(text))
}

var missingCommandSignatures = []string{
	"no such command: `mutants`",
	"No such command: `mutants`",
	"unrecognized subcommand 'mutants'",
	"unknown subcommand 'mutants'",
}

func outputMissingCommand(stderr string) bool {
	for _, sig := range missingCommandSignatures {
		if strings.Contains(stderr, sig) {
			return true
		}
	}

	return false
}

// parseLabel splits "src/lib.rs:42:5: replace + with *" into file, line and description.
func parseLabel(label string) (string, uint32, string) {
	parts := strings.SplitN(label, ":", 4)

	switch {
	case len(parts) >= 4:
		return parts[0], parseLine(parts[1]), strings.TrimSpace(parts[3])
	case len(parts) >= 2:
		return parts[0], parseLine(parts[1]), label
	}

	return "", 0, label
}

func parseLine(s string) uint32 {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}

	return uint32(n)
}

// anchoredSelector turns a label into a regex that matches exactly that label.
func anchoredSelector(label string) string {
	return "^" + regexp.QuoteMeta(label) + "$"
}

// mutantID derives a stable id from the listing position and text.
func mutantID(index int, line string) string {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d:%s", index, line)

	return fmt.Sprintf("m%04x", h.Sum64())
}
