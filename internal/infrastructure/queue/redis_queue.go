package queue

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// Publisher enqueues background jobs for the worker process.
type Publisher interface {
	Publish(ctx context.Context, job Job) error
}

// RedisQueue is a LPUSH/BRPOP list shared by server and worker.
type RedisQueue struct {
	rdb *redis.Client
	key string
}

func NewRedisQueue(rdb *redis.Client, key string) *RedisQueue {
	return &RedisQueue{rdb: rdb, key: key}
}

func (q *RedisQueue) Publish(ctx context.Context, job Job) error {
	payload, err := SerializeJob(job)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, q.key, payload).Err()
}

// Next blocks up to timeout for a job. It returns nil, nil on timeout.
func (q *RedisQueue) Next(ctx context.Context, timeout time.Duration) (*Job, error) {
	val, err := q.rdb.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return DeserializeJob(val[1])
}
