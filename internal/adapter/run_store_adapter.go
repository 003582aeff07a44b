package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// RunStoreAdapter abstracts the run-root directory layout so the domain can be
// tested without caring how directories and artifacts are created.
type RunStoreAdapter interface {
	// CreateRunDir creates <root>/<runID> and returns its path.
	CreateRunDir(root, runID string) (string, error)
	// ListRunDirs returns the names of directories directly under root.
	// A missing root yields an empty list.
	ListRunDirs(root string) ([]string, error)
	// WriteArtifact writes content to <runDir>/<relPath>, replacing any
	// previous file, and creates parent directories as needed.
	WriteArtifact(runDir, relPath string, content []byte) error
	// ReadArtifact reads <runDir>/<relPath>.
	ReadArtifact(runDir, relPath string) ([]byte, error)
}

// LocalRunStoreAdapter is the filesystem-backed RunStoreAdapter.
type LocalRunStoreAdapter struct{}

// NewLocalRunStoreAdapter constructs a LocalRunStoreAdapter.
func NewLocalRunStoreAdapter() *LocalRunStoreAdapter {
	return &LocalRunStoreAdapter{}
}

// CreateRunDir implements RunStoreAdapter.
func (a *LocalRunStoreAdapter) CreateRunDir(root, runID string) (string, error) {
	dir := filepath.Join(root, runID)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create run directory %s: %w", dir, err)
	}

	return dir, nil
}

// ListRunDirs implements RunStoreAdapter.
func (a *LocalRunStoreAdapter) ListRunDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read run root %s: %w", root, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// WriteArtifact implements RunStoreAdapter.
func (a *LocalRunStoreAdapter) WriteArtifact(runDir, relPath string, content []byte) error {
	path := filepath.Join(runDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	if err := os.WriteFile(path, content, 0o640); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", path, err)
	}

	return nil
}

// ReadArtifact implements RunStoreAdapter.
func (a *LocalRunStoreAdapter) ReadArtifact(runDir, relPath string) ([]byte, error) {
	path := filepath.Join(runDir, filepath.FromSlash(relPath))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	return data, nil
}
