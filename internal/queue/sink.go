// Package queue implements the propagation sink: JSON-serialise a record
// and LPUSH it onto a per-network, per-resource channel, per §4.4. The
// list-push (not pub/sub PUBLISH) choice is explained in SPEC_FULL.md §13.
package queue

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// EmitError is the "EmitX" error kind from §7: a queue publish failure,
// logged at warn and never retried — the record remains persisted
// regardless.
type EmitError struct {
	Channel string
	Err     error
}

func (e *EmitError) Error() string {
	return "queue: publish " + e.Channel + ": " + e.Err.Error()
}

func (e *EmitError) Unwrap() error { return e.Err }

// Sink owns a cheaply cloneable Redis client handle; each publish acquires
// its own connection from the client's internal pool and releases it, per
// §4.4/§5.
type Sink struct {
	rdb *redis.Client
}

// New parses queueURL (e.g. "redis://localhost:6379") and returns a Sink
// sharing one redis.Client, which is itself already safe for concurrent
// use and internally pooled — the same "shared handle, one connection per
// call" shape as the teacher's core/connection_pool.go.
func New(queueURL string) (*Sink, error) {
	opt, err := redis.ParseURL(queueURL)
	if err != nil {
		return nil, err
	}
	return &Sink{rdb: redis.NewClient(opt)}, nil
}

// Close releases the underlying client.
func (s *Sink) Close() error { return s.rdb.Close() }

// Publish serialises v to JSON and left-pushes it onto channel. No
// batching, no retries, per §4.4.
func (s *Sink) Publish(ctx context.Context, channel string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return &EmitError{Channel: channel, Err: err}
	}
	if err := s.rdb.LPush(ctx, channel, payload).Err(); err != nil {
		return &EmitError{Channel: channel, Err: err}
	}
	return nil
}
