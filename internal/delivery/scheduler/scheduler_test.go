package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"portfolio/internal/infrastructure/queue"
	"portfolio/internal/usecases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeThumbnails struct {
	scheduled int
	err       error
	calls     int
}

func (f *fakeThumbnails) HandleJob(context.Context, queue.Job) error { return nil }

func (f *fakeThumbnails) Backfill(context.Context) (int, error) {
	f.calls++
	return f.scheduled, f.err
}

func TestNewRegistersEnabledJobs(t *testing.T) {
	logger := zaptest.NewLogger(t)

	c, err := New(Jobs{Cleanup: usecases.NewCleanupService(t.TempDir(), logger), Logger: logger})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)

	c, err = New(Jobs{
		Cleanup:    usecases.NewCleanupService(t.TempDir(), logger),
		Thumbnails: &fakeThumbnails{},
		Logger:     logger,
	})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 2)

	// prune needs both the flag and a media service
	c, err = New(Jobs{PruneBroken: true, Logger: logger})
	require.NoError(t, err)
	assert.Empty(t, c.Entries())
}

func TestRunCleanupRemovesOldFiles(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.part")
	fresh := filepath.Join(dir, "fresh.part")
	require.NoError(t, os.WriteFile(old, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(fresh, []byte("x"), 0o644))
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	logger := zaptest.NewLogger(t)
	Jobs{Cleanup: usecases.NewCleanupService(dir, logger), TempMaxAge: DefaultTempMaxAge, Logger: logger}.RunCleanup()

	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
}

func TestRunBackfill(t *testing.T) {
	thumbs := &fakeThumbnails{scheduled: 2}
	j := Jobs{Thumbnails: thumbs, Logger: zaptest.NewLogger(t)}

	j.RunBackfill(t.Context())
	thumbs.err = errors.New("redis down")
	j.RunBackfill(t.Context())

	assert.Equal(t, 2, thumbs.calls)
}
