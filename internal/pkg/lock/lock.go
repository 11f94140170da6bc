// Package lock serializes check-then-insert sequences across service instances.
package lock

import (
	"context"
	"time"

	"tourism-service/internal/pkg/errors"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

type Locker interface {
	// Lock blocks until key is held and returns the release function.
	Lock(ctx context.Context, key string) (func(), error)
}

type redsyncLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

func NewRedsync(client *redis.Client, expiry time.Duration) Locker {
	return &redsyncLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
	}
}

func (l *redsyncLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex("lock:"+key, redsync.WithExpiry(l.expiry), redsync.WithTries(32))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errors.InternalServerError("error acquire lock " + key)
	}

	return func() {
		// an expired lock is released by redis itself
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}

// Noop is used where a single instance runs without redis, and in tests.
type Noop struct{}

func (Noop) Lock(ctx context.Context, key string) (func(), error) {
	return func() {}, nil
}
