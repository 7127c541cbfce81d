package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notetaking/internal/adapters/http/dto"
	svc "notetaking/internal/ports/services"
	"notetaking/pkg/logger"
)

// MsgTooManyRequests - ответ при превышении лимита.
const MsgTooManyRequests = "Too many requests"

// RateLimitOptions задает фиксированное окно ограничения.
type RateLimitOptions struct {
	Scope  string
	Max    int
	Window time.Duration
}

// NewRateLimitMiddleware ограничивает число запросов с одного IP.
// Ошибка хранилища счетчиков не блокирует запрос.
func NewRateLimitMiddleware(limiter svc.RateLimiter, opts RateLimitOptions) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		key := opts.Scope + ":" + ctx.IP()

		allowed, err := limiter.Allow(requestCtx, key, opts.Max, opts.Window)
		if err != nil {
			logger.Log(requestCtx).Warn(requestCtx, "rate limiter unavailable, request allowed",
				zap.String("middleware", "ratelimit"),
				zap.String("key", key),
				zap.Error(err),
			)
			return ctx.Next()
		}

		if !allowed {
			ctx.Set(fiber.HeaderRetryAfter, formatSeconds(opts.Window))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(dto.MessageResponse{Message: MsgTooManyRequests})
		}
		return ctx.Next()
	}
}

func formatSeconds(d time.Duration) string {
	return strconv.Itoa(int(d.Round(time.Second).Seconds()))
}
