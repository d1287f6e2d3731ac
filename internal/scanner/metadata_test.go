package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBytes(t *testing.T, path string, n int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, make([]byte, n), 0644))
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	writeBytes(t, filepath.Join(dir, "a.bin"), 1<<20)

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	writeBytes(t, filepath.Join(sub, "b.bin"), 1<<20)

	size := DirSize(dir)
	assert.InDelta(t, 2.0, size, 0.1)
}

func TestDirSize_EmptyDir(t *testing.T) {
	assert.Equal(t, 0.0, DirSize(t.TempDir()))
}

func TestDirSize_MissingDir(t *testing.T) {
	assert.Equal(t, 0.0, DirSize(filepath.Join(t.TempDir(), "gone")))
}

func TestMetadata_UnreadableSubtreeSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	writeBytes(t, filepath.Join(dir, "visible.bin"), 1<<20)

	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0755))
	writeBytes(t, filepath.Join(locked, "invisible.bin"), 1<<20)

	// Age everything reachable, then lock the subtree. The fresh file
	// inside it would dominate LastModified if the skip were broken.
	old := time.Now().Add(-72 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "visible.bin"), old, old))
	require.NoError(t, os.Chtimes(locked, old, old))
	require.NoError(t, os.Chtimes(dir, old, old))
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	// The locked subtree contributes neither bytes nor timestamps.
	assert.InDelta(t, 1.0, DirSize(dir), 0.1)
	assert.True(t, LastModified(dir).Before(time.Now().Add(-time.Hour)))
}

func TestLastModified_DeepFileWins(t *testing.T) {
	dir := t.TempDir()
	deep := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(deep, 0755))

	file := filepath.Join(deep, "new.txt")
	writeBytes(t, file, 1)

	// Age out everything except the deep file.
	old := time.Now().Add(-48 * time.Hour)
	for _, p := range []string{dir, filepath.Join(dir, "a"), deep} {
		require.NoError(t, os.Chtimes(p, old, old))
	}
	recent := time.Now().Add(-time.Minute)
	require.NoError(t, os.Chtimes(file, recent, recent))

	got := LastModified(dir)
	assert.WithinDuration(t, recent, got, time.Second)
}

func TestLastModified_EmptyDirReportsOwnMtime(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().Add(-24 * time.Hour)
	require.NoError(t, os.Chtimes(dir, old, old))

	got := LastModified(dir)
	assert.WithinDuration(t, old, got, time.Second)
}

func TestLastModified_MissingDirIsZero(t *testing.T) {
	got := LastModified(filepath.Join(t.TempDir(), "gone"))
	assert.True(t, got.IsZero())
}
