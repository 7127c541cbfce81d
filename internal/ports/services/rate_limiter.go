package services

import (
	"context"
	"time"
)

// RateLimiter считает запросы в фиксированном окне.
type RateLimiter interface {
	// Allow увеличивает счетчик ключа и сообщает, не превышен ли лимит.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
