package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"go.uber.org/zap"

	"notetaking/pkg/logger"
)

// NewLoggerMiddleware создает новое промежуточное ПО для логирования HTTP запросов.
// Идентификатор запроса переносится в context.Context, поэтому все записи
// нижележащих слоев получают поле request_id.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.ContextWithRequestID(ctx.Context(), requestid.FromContext(ctx))
		ctx.SetContext(requestCtx)

		start := time.Now()
		log := logger.Log(requestCtx).With(
			zap.String("path", ctx.Path()),
			zap.String("method", ctx.Method()),
			zap.String("ip", ctx.IP()),
		)

		log.Info(requestCtx, "Request started")

		err := ctx.Next()
		if err != nil {
			// Ответ формируется здесь, чтобы в лог попал итоговый статус.
			if handlerErr := ctx.App().ErrorHandler(ctx, err); handlerErr != nil {
				log.Error(requestCtx, "Request failed", zap.Error(handlerErr))
				return fmt.Errorf("request processing error: %w", handlerErr)
			}
		}

		log.Info(requestCtx, "Request completed",
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}
