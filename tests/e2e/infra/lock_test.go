//go:build e2e

package infra_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking-core/internal/infra/lock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"
	"hotel-booking-core/tests/e2e"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lockKey = "hotel-1:deluxe"

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: e2e.StartRedis(t)})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisLocker(t *testing.T) {
	ctx := context.Background()
	client := newRedisClient(t)

	t.Run("success: second holder waits for release", func(t *testing.T) {
		require.NoError(t, client.FlushDB(ctx).Err())
		locker := lock.NewRedisLocker(client, 5*time.Second, 10*time.Millisecond)

		release, err := locker.Acquire(ctx, lockKey, time.Second)
		require.NoError(t, err)

		_, err = locker.Acquire(ctx, lockKey, 100*time.Millisecond)
		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrLockNotAcquired))

		release()
		release()

		again, err := locker.Acquire(ctx, lockKey, time.Second)
		require.NoError(t, err)
		again()
	})

	t.Run("success: holders never overlap", func(t *testing.T) {
		require.NoError(t, client.FlushDB(ctx).Err())
		locker := lock.NewRedisLocker(client, 5*time.Second, 5*time.Millisecond)

		var (
			wg       sync.WaitGroup
			inside   atomic.Int32
			overlaps atomic.Int32
			acquired atomic.Int32
		)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := locker.Acquire(ctx, lockKey, 10*time.Second)
				if err != nil {
					t.Errorf("acquire: %v", err)
					return
				}
				defer release()
				acquired.Add(1)
				if inside.Add(1) > 1 {
					overlaps.Add(1)
				}
				time.Sleep(20 * time.Millisecond)
				inside.Add(-1)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(8), acquired.Load())
		assert.Zero(t, overlaps.Load())
	})

	t.Run("success: expired holder does not release the new holder's lease", func(t *testing.T) {
		require.NoError(t, client.FlushDB(ctx).Err())
		shortLease := lock.NewRedisLocker(client, 200*time.Millisecond, 10*time.Millisecond)
		locker := lock.NewRedisLocker(client, 5*time.Second, 10*time.Millisecond)

		stale, err := shortLease.Acquire(ctx, lockKey, time.Second)
		require.NoError(t, err)

		current, err := locker.Acquire(ctx, lockKey, 2*time.Second)
		require.NoError(t, err, "lease should expire and be taken over")

		stale()

		_, err = locker.Acquire(ctx, lockKey, 100*time.Millisecond)
		assert.True(t, errs.Is(err, shared.ErrLockNotAcquired), "stale release must not drop the current lease")

		current()
		after, err := locker.Acquire(ctx, lockKey, time.Second)
		require.NoError(t, err)
		after()
	})

	t.Run("error: cancelled context stops waiting", func(t *testing.T) {
		require.NoError(t, client.FlushDB(ctx).Err())
		locker := lock.NewRedisLocker(client, 5*time.Second, 10*time.Millisecond)
		release, err := locker.Acquire(ctx, lockKey, time.Second)
		require.NoError(t, err)
		defer release()

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err = locker.Acquire(cancelled, lockKey, time.Second)
		assert.True(t, errs.Is(err, shared.ErrLockNotAcquired))
	})
}
