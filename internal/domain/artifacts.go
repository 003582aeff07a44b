package domain

import (
	"path"
	"strings"

	"github.com/moofone/kitchensink-testing/internal/adapter"
	m "github.com/moofone/kitchensink-testing/internal/model"
)

// sanitizeMutantID maps a mutant id to a filesystem-safe token.
func sanitizeMutantID(id string) string {
	var b strings.Builder

	b.Grow(len(id))

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}

// artifactPath returns the run-relative path of a captured stream.
func artifactPath(mutantID, stream string) string {
	return path.Join(m.ArtifactsDirName, sanitizeMutantID(mutantID)+"."+stream+".log")
}

// writeArtifacts stores captured output of one execution. A stream is written
// when it is non-empty, or always when the outcome is an error. Paths are
// relative to runDir; nil means nothing was written.
func writeArtifacts(store adapter.RunStoreAdapter, runDir, mutantID string, result adapter.ExecutionResult) (*string, *string, error) {
	isError := result.Outcome.IsError()

	var stdoutPath, stderrPath *string

	if result.Stdout != "" || isError {
		rel := artifactPath(mutantID, "stdout")
		if err := store.WriteArtifact(runDir, rel, []byte(result.Stdout)); err != nil {
			return nil, nil, err
		}

		stdoutPath = &rel
	}

	if result.Stderr != "" || isError {
		rel := artifactPath(mutantID, "stderr")
		if err := store.WriteArtifact(runDir, rel, []byte(result.Stderr)); err != nil {
			return nil, nil, err
		}

		stderrPath = &rel
	}

	return stdoutPath, stderrPath, nil
}
