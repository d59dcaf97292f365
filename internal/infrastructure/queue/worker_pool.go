package queue

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPool struct {
	JobChan chan Job
	wg      sync.WaitGroup
	ctx     context.Context    //graceful shutdown için
	cancel  context.CancelFunc //graceful shutdown için
}

// NewWorkerPool starts workerCount workers that run handle for each job.
// retry may be nil.
func NewWorkerPool(workerCount int, handle Handler, retry func(Job), logger *zap.Logger) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		JobChan: make(chan Job, 100),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			ID:      i,
			JobChan: pool.JobChan,
			Wg:      &pool.wg,
			Handle:  handle,
			Retry:   retry,
			Logger:  logger,
		}
		pool.wg.Add(1)
		worker.Start(pool.ctx)
	}
	return pool
}

func (p *WorkerPool) AddJob(job Job) {
	p.JobChan <- job
}

// Shutdown lets queued jobs drain, then stops the workers.
func (p *WorkerPool) Shutdown() {
	close(p.JobChan)
	p.wg.Wait()
	p.cancel()
}
