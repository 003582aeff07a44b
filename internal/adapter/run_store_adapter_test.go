package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRunStoreAdapter_Layout(t *testing.T) {
	store := NewLocalRunStoreAdapter()
	root := filepath.Join(t.TempDir(), "runs")

	names, err := store.ListRunDirs(root)
	require.NoError(t, err)
	assert.Empty(t, names)

	dir, err := store.CreateRunDir(root, "run-1-2-3")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "run-1-2-3"), dir)
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0o600))

	names, err = store.ListRunDirs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"run-1-2-3"}, names)

	require.NoError(t, store.WriteArtifact(dir, "artifacts/m1.stdout.log", []byte("first")))
	require.NoError(t, store.WriteArtifact(dir, "artifacts/m1.stdout.log", []byte("second")))

	data, err := store.ReadArtifact(dir, "artifacts/m1.stdout.log")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	_, err = store.ReadArtifact(dir, "artifacts/absent.log")
	require.Error(t, err)
}
