package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
)

// NewDeadlineMiddleware ограничивает время обработки запроса.
// Дедлайн передается в context.Context и соблюдается pgx и подписью ссылок.
func NewDeadlineMiddleware(timeout time.Duration) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		if timeout <= 0 {
			return ctx.Next()
		}

		requestCtx, cancel := context.WithTimeout(ctx.Context(), timeout)
		defer cancel()

		ctx.SetContext(requestCtx)
		return ctx.Next()
	}
}
