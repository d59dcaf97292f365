// Package scheduler registers the server's periodic maintenance jobs.
package scheduler

import (
	"context"
	"time"

	"portfolio/internal/usecases"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	CleanupSpec  = "@every 5m"
	BackfillSpec = "@every 15m"
	PruneSpec    = "@daily"

	DefaultTempMaxAge = 24 * time.Hour
	jobTimeout        = 10 * time.Minute
)

// Jobs wires the maintenance services. Nil services are skipped.
type Jobs struct {
	Cleanup     usecases.CleanupService
	Thumbnails  usecases.ThumbnailService
	Media       usecases.MediaService
	TempMaxAge  time.Duration
	PruneBroken bool
	Logger      *zap.Logger
}

// New returns a stopped cron with every enabled job registered.
func New(j Jobs) (*cron.Cron, error) {
	if j.Logger == nil {
		j.Logger = zap.NewNop()
	}
	if j.TempMaxAge <= 0 {
		j.TempMaxAge = DefaultTempMaxAge
	}

	c := cron.New()
	if j.Cleanup != nil {
		if _, err := c.AddFunc(CleanupSpec, j.RunCleanup); err != nil {
			return nil, err
		}
	}
	if j.Thumbnails != nil {
		if _, err := c.AddFunc(BackfillSpec, func() { j.RunBackfill(context.Background()) }); err != nil {
			return nil, err
		}
	}
	if j.PruneBroken && j.Media != nil {
		if _, err := c.AddFunc(PruneSpec, func() { j.RunPrune(context.Background()) }); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RunCleanup, TempMaxAge süresinden eski geçici dosyaları siler.
func (j Jobs) RunCleanup() {
	n, err := j.Cleanup.CleanupOldTempFiles(j.TempMaxAge)
	if err != nil {
		j.Logger.Error("temp cleanup failed", zap.String("job", "cleanup"), zap.Error(err))
		return
	}
	if n > 0 {
		j.Logger.Info("temp files removed", zap.String("job", "cleanup"), zap.Int("count", n))
	}
}

func (j Jobs) RunBackfill(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()
	n, err := j.Thumbnails.Backfill(ctx)
	if err != nil {
		j.Logger.Error("thumbnail backfill failed", zap.String("job", "backfill"), zap.Error(err))
		return
	}
	if n > 0 {
		j.Logger.Info("thumbnails scheduled", zap.String("job", "backfill"), zap.Int("count", n))
	}
}

func (j Jobs) RunPrune(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()
	n, err := j.Media.PruneBrokenImages(ctx)
	if err != nil {
		j.Logger.Error("broken media prune failed", zap.String("job", "prune"), zap.Error(err))
		return
	}
	j.Logger.Info("broken media pruned", zap.String("job", "prune"), zap.Int("count", n))
}
