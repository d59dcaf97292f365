package fileutils

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpoolToTemp(t *testing.T) {
	dir := t.TempDir()

	f, n, err := SpoolToTemp(dir, ".txt", strings.NewReader("hello"), 10)
	require.NoError(t, err)
	defer Discard(f)

	assert.Equal(t, int64(5), n)
	assert.Equal(t, ".txt", filepath.Ext(f.Name()))
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestSpoolToTempRejectsOversize(t *testing.T) {
	dir := t.TempDir()

	_, _, err := SpoolToTemp(dir, "", strings.NewReader("0123456789abc"), 10)
	require.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveOlderThan(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old")
	newPath := filepath.Join(dir, "new")
	require.NoError(t, os.WriteFile(oldPath, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(newPath, []byte("x"), 0644))

	now := time.Now()
	require.NoError(t, os.Chtimes(oldPath, now.Add(-48*time.Hour), now.Add(-48*time.Hour)))

	removed, err := RemoveOlderThan(dir, 24*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, []string{oldPath}, removed)
	assert.NoFileExists(t, oldPath)
	assert.FileExists(t, newPath)
}

func TestRemoveOlderThanMissingDir(t *testing.T) {
	removed, err := RemoveOlderThan(filepath.Join(t.TempDir(), "missing"), time.Hour, time.Now())
	assert.NoError(t, err)
	assert.Empty(t, removed)
}
