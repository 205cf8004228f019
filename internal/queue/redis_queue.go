package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/saransh1220/filevault/internal/domain"
)

type redisQueue struct {
	client *redis.Client
	key    string
}

// NewRedisQueue creates a durable FIFO job queue on a Redis list. Producers
// LPUSH, the single worker BRPOPs, so jobs come out in enqueue order and each
// job is handed to exactly one consumer.
func NewRedisQueue(client *redis.Client, key string) domain.JobQueue {
	return &redisQueue{client: client, key: key}
}

// Enqueue appends the job and returns once Redis has accepted it.
func (q *redisQueue) Enqueue(ctx context.Context, job domain.ThumbnailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}
	return nil
}

// Dequeue blocks until a job is available or ctx is cancelled. Decoding
// ignores unknown payload fields, so a newer producer can add fields without
// breaking this worker.
func (q *redisQueue) Dequeue(ctx context.Context) (domain.ThumbnailJob, error) {
	var job domain.ThumbnailJob

	res, err := q.client.BRPop(ctx, 0, q.key).Result()
	if err != nil {
		return job, fmt.Errorf("failed to dequeue job: %w", err)
	}
	// BRPop returns [key, value].
	if len(res) != 2 {
		return job, fmt.Errorf("unexpected brpop reply of length %d", len(res))
	}
	return decodeJob([]byte(res[1]))
}

// decodeJob parses a queue payload. Unknown fields are ignored so a newer
// producer can extend the payload without breaking this worker.
func decodeJob(payload []byte) (domain.ThumbnailJob, error) {
	var job domain.ThumbnailJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return job, fmt.Errorf("failed to decode job payload: %w", err)
	}
	return job, nil
}
