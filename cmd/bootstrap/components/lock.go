package components

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking-core/internal/infra/lock"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var LockModule = fx.Module("lock",
	fx.Provide(
		NewRangeLocker,
	),
)

func NewRangeLocker(lc fx.Lifecycle, cfg config.Config) (shared.RangeLocker, error) {
	if cfg.Lock.Backend != config.LockBackendRedis {
		return lock.NewMemoryLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Lock.RedisAddr,
		Password: cfg.Lock.RedisPassword,
		DB:       cfg.Lock.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "ping redis at "+cfg.Lock.RedisAddr)
	}
	slog.Info("using redis lock backend", "addr", cfg.Lock.RedisAddr)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lock.NewRedisLocker(client, cfg.Lock.LeaseTTL, cfg.Lock.RetryInterval), nil
}
