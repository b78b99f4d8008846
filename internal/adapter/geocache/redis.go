package geocache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"adpilot/internal/config/configs"
)

const keyPrefix = "adpilot:geo:"

// Redis shares resolved keys between replicas. Backend errors are logged
// and treated as misses; the resolver then falls through to a lookup.
type Redis struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedis(cfg configs.GeoCache, logger *slog.Logger) *Redis {
	return &Redis{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}),
		ttl:    cfg.TTL,
		logger: logger.With(slog.String("component", "geocache-redis")),
	}
}

// Ping verifies connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	v, err := r.rdb.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		r.logger.Warn("geo cache get failed", slog.String("key", key), slog.Any("error", err))
		return "", false
	}
	return v, true
}

func (r *Redis) Set(ctx context.Context, key, value string) {
	if err := r.rdb.Set(ctx, keyPrefix+key, value, r.ttl).Err(); err != nil {
		r.logger.Warn("geo cache set failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
