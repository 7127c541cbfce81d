// Package upload содержит HTTP-обработчики выдачи ссылок на изображения.
package upload

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notetaking/internal/adapters/http/dto"
	"notetaking/internal/adapters/http/middleware"
	"notetaking/internal/ports/api"
	"notetaking/pkg/logger"
)

// Константы сообщений.
const (
	LogHandlerUploadURL = "handling upload url request"
	LogHandlerImageURL  = "handling image url request"

	MsgMissingObjectKey = "Missing filenameInGCS in get image api"

	queryObjectKey = "filenameInGCS"
)

// Handler выдает подписанные ссылки. Байты изображений через сервис не проходят.
type Handler struct {
	uploads api.UploadUseCase
}

// NewHandler создает новый экземпляр обработчика загрузок.
func NewHandler(uploads api.UploadUseCase) *Handler {
	return &Handler{uploads: uploads}
}

// CreateUploadURL выдает ссылку на запись объекта.
func (h *Handler) CreateUploadURL(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateUploadURL"))
	log.Debug(requestCtx, LogHandlerUploadURL)

	req, ok := middleware.Body[dto.UploadRequest](ctx)
	if !ok {
		return fmt.Errorf("upload url: %w", fiber.ErrBadRequest)
	}

	ticket, err := h.uploads.CreateUploadURL(requestCtx, req.Filename, req.ContentType)
	if err != nil {
		return fmt.Errorf("creating upload url: %w", err)
	}

	if err := ctx.JSON(dto.UploadResponse{
		SignedURL:     ticket.SignedURL,
		FilenameInGCS: ticket.ObjectKey,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetImageURL выдает ссылку на чтение объекта.
func (h *Handler) GetImageURL(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetImageURL"))
	log.Debug(requestCtx, LogHandlerImageURL)

	key := strings.TrimSpace(ctx.Query(queryObjectKey))
	if key == "" {
		if err := ctx.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: MsgMissingObjectKey}); err != nil {
			return fmt.Errorf("error sending response: %w", err)
		}
		return nil
	}

	url, err := h.uploads.CreateDownloadURL(requestCtx, key)
	if err != nil {
		return fmt.Errorf("creating download url: %w", err)
	}

	if err := ctx.JSON(dto.ImageURLResponse{ImageURL: url}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
