package lock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "hotel-booking:lock:"

// Deletes the key only while it still holds our token, so an expired lease
// taken over by another instance is never released by the old owner.
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// RedisLocker serializes writers on one lock key across instances.
type RedisLocker struct {
	client        redis.UniversalClient
	leaseTTL      time.Duration
	retryInterval time.Duration
}

func NewRedisLocker(client redis.UniversalClient, leaseTTL, retryInterval time.Duration) *RedisLocker {
	if retryInterval <= 0 {
		retryInterval = 25 * time.Millisecond
	}
	return &RedisLocker{
		client:        client,
		leaseTTL:      leaseTTL,
		retryInterval: retryInterval,
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, timeout time.Duration) (func(), error) {
	redisKey := redisKeyPrefix + key
	token := uuid.NewString()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ticker := time.NewTicker(l.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.leaseTTL).Result()
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "acquire redis lock "+key), shared.ErrLockNotAcquired)
		}
		if ok {
			return l.releaser(redisKey, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, errs.Mark(errs.Wrap(ctx.Err(), "wait for redis lock "+key), shared.ErrLockNotAcquired)
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) releaser(redisKey, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			// The request ctx may be done by now; release on a fresh one.
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil {
				slog.Warn("failed to release redis lock", "key", redisKey, "error", err.Error())
			}
		})
	}
}
