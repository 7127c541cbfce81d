package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notetaking/internal/adapters/http/dto"
	"notetaking/internal/domain/services"
	"notetaking/pkg/logger"
)

// Ответы обработчика ошибок.
const (
	MsgUnauthorized  = "Unauthorized"
	MsgInternalError = "Internal server error"
)

// ValidationResponse - тело ответа 400 при ошибке валидации.
type ValidationResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// NewErrorHandler переводит необработанные ошибки в HTTP ответы.
// Подробности ошибки пишутся только в лог.
func NewErrorHandler() fiber.ErrorHandler {
	return func(ctx fiber.Ctx, err error) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.String("ip", ctx.IP()),
		)

		var (
			validationErr *ValidationError
			fiberErr      *fiber.Error
		)
		switch {
		case errors.As(err, &validationErr):
			log.Debug(requestCtx, "validation failed", zap.Error(err))
			return ctx.Status(fiber.StatusBadRequest).JSON(ValidationResponse{
				Message: MsgValidationFailed,
				Errors:  validationErr.Fields,
			})
		case errors.Is(err, services.ErrUnauthorized):
			log.Debug(requestCtx, "unauthorized", zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: MsgUnauthorized})
		case errors.As(err, &fiberErr):
			log.Debug(requestCtx, "fiber error", zap.Int("status", fiberErr.Code), zap.Error(err))
			return ctx.Status(fiberErr.Code).JSON(dto.MessageResponse{Message: fiberErr.Message})
		}

		log.Error(requestCtx, "Unhandled error", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: MsgInternalError})
	}
}
