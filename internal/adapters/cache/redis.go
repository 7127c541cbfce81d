// Package cache содержит счетчики запросов на базе Redis.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	svc "notetaking/internal/ports/services"
	"notetaking/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodAllow = "allow"

	ErrorFailedToIncrement = "failed to increment counter in redis"

	// DefaultKeyPrefix - префикс ключей счетчиков.
	DefaultKeyPrefix = "ratelimit:"
)

// RedisRateLimiter реализует ограничение частоты фиксированным окном.
type RedisRateLimiter struct {
	client redis.Cmdable
	prefix string
}

// NewRedisRateLimiter создает ограничитель поверх клиента Redis.
func NewRedisRateLimiter(client redis.Cmdable, prefix string) svc.RateLimiter {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisRateLimiter{client: client, prefix: prefix}
}

// Allow увеличивает счетчик ключа в текущем окне. INCR и EXPIRE NX выполняются
// одной транзакцией MULTI/EXEC, поэтому счетчик не остается без времени жизни.
// EXPIRE NX требует Redis 7.0+.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	fullKey := l.prefix + key
	log := logger.Log(ctx).With(zap.String("method", LogMethodAllow), zap.String("key", fullKey))

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, fullKey)
		pipe.ExpireNX(ctx, fullKey, window)
		return nil
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToIncrement, zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrorFailedToIncrement, err)
	}

	return incr.Val() <= int64(limit), nil
}
