package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notetaking/internal/adapters/http/dto"
	"notetaking/pkg/logger"
)

// NewRecoveryMiddleware создает новое промежуточное ПО для восстановления после паники.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx := ctx.Context()

		defer func() {
			if r := recover(); r != nil {
				logger.Log(requestCtx).Error(requestCtx, "Server panic",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)

				if sendErr := ctx.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
					Message: MsgInternalError,
				}); sendErr != nil {
					err = fmt.Errorf("failed to send error response after panic: %w", sendErr)
				}
			}
		}()

		return ctx.Next()
	}
}
