// Package health содержит обработчик проверки состояния.
package health

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"notetaking/internal/adapters/http/dto"
)

// StatusOK - статус работающего сервиса.
const StatusOK = "OK"

// Handler отвечает на проверки состояния.
type Handler struct {
	now func() time.Time
}

// NewHandler создает обработчик; now по умолчанию time.Now.
func NewHandler(now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{now: now}
}

// Check возвращает статус и текущее время.
func (h *Handler) Check(ctx fiber.Ctx) error {
	if err := ctx.JSON(dto.HealthResponse{
		Status:    StatusOK,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
