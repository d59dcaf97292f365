package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestJobSerialization(t *testing.T) {
	payload, err := SerializeJob(Job{Type: JobVideoThumbnail, MediaID: "v1", StorageKey: "videos/tv-show/v1.mp4"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"video_thumbnail","media_id":"v1","storage_key":"videos/tv-show/v1.mp4"}`, payload)

	job, err := DeserializeJob(payload)
	require.NoError(t, err)
	assert.Equal(t, JobVideoThumbnail, job.Type)

	_, err = DeserializeJob(`{"type":""}`)
	assert.Error(t, err)
	_, err = DeserializeJob(`not json`)
	assert.Error(t, err)
}

func TestWorkerPoolRunsEveryJob(t *testing.T) {
	var handled atomic.Int32
	pool := NewWorkerPool(3, func(ctx context.Context, job Job) error {
		handled.Add(1)
		return nil
	}, nil, zaptest.NewLogger(t))

	for i := 0; i < 10; i++ {
		pool.AddJob(Job{Type: JobImageThumbnail, MediaID: "m"})
	}
	pool.Shutdown()

	assert.Equal(t, int32(10), handled.Load())
}

func TestWorkerRetriesUntilMaxAttempts(t *testing.T) {
	var mu sync.Mutex
	var retried []Job

	pool := NewWorkerPool(1, func(ctx context.Context, job Job) error {
		return errors.New("boom")
	}, func(job Job) {
		mu.Lock()
		retried = append(retried, job)
		mu.Unlock()
	}, zaptest.NewLogger(t))

	pool.AddJob(Job{Type: JobImageThumbnail, MediaID: "a"})
	pool.AddJob(Job{Type: JobImageThumbnail, MediaID: "b", Attempt: MaxAttempts - 1})
	pool.Shutdown()

	require.Len(t, retried, 1)
	assert.Equal(t, "a", retried[0].MediaID)
	assert.Equal(t, 1, retried[0].Attempt)
}
