package queue

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Handler runs one job.
type Handler func(ctx context.Context, job Job) error

type Worker struct {
	ID      int        // worker id
	JobChan <-chan Job // iş kuyruğu
	Wg      *sync.WaitGroup
	Handle  Handler
	Retry   func(Job)
	Logger  *zap.Logger
}

func (w *Worker) Start(ctx context.Context) { // worker başlatma fonksiyonu
	go func() {
		defer w.Wg.Done()
		for {
			select {
			case job, ok := <-w.JobChan: //channeldan iş alınır
				if !ok {
					w.Logger.Debug("job channel closed", zap.Int("worker", w.ID))
					return
				}
				select {
				case <-ctx.Done():
					w.Logger.Info("job cancelled", zap.Int("worker", w.ID), zap.String("media_id", job.MediaID))
					continue
				default:
					w.processJob(ctx, job)
				}
			case <-ctx.Done():
				w.Logger.Debug("worker stopping", zap.Int("worker", w.ID))
				return
			}
		}
	}()
}

func (w *Worker) processJob(ctx context.Context, job Job) {
	log := w.Logger.With(
		zap.Int("worker", w.ID),
		zap.String("type", string(job.Type)),
		zap.String("media_id", job.MediaID),
		zap.Int("attempt", job.Attempt),
	)
	log.Info("processing job")

	if err := w.Handle(ctx, job); err != nil {
		if job.Attempt+1 < MaxAttempts && w.Retry != nil {
			job.Attempt++
			log.Warn("job failed, retrying", zap.Error(err))
			w.Retry(job)
			return
		}
		log.Error("job failed", zap.Error(err))
		return
	}
	log.Info("job succeeded")
}
