// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notetaking/internal/adapters/http/dto"
	"notetaking/internal/adapters/http/middleware"
	"notetaking/internal/domain/entities"
	"notetaking/internal/domain/services"
	"notetaking/internal/ports/api"
	"notetaking/pkg/logger"
)

// Константы сообщений для логирования и ответов.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	MsgNoteNotFound = "Note not found"
	MsgNoteDeleted  = "Note deleted successfully"

	paramNoteID = "id"
)

// Handler обработчик HTTP-запросов для работы с заметками.
// Владелец заметки всегда берется из токена.
type Handler struct {
	notes api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notes api.NoteUseCase) *Handler {
	return &Handler{notes: notes}
}

// ListNotes возвращает заметки пользователя, новые сверху.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return services.ErrUnauthorized
	}

	notes, err := h.notes.ListByUser(requestCtx, identity.ID)
	if err != nil {
		return fmt.Errorf("listing notes: %w", err)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.NewNoteSummaries(notes))
}

// GetNote возвращает заметку пользователя по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(requestCtx, LogHandlerGetNote)

	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return services.ErrUnauthorized
	}

	note, err := h.notes.GetByIDForUser(requestCtx, ctx.Params(paramNoteID), identity.ID)
	if err != nil {
		return fmt.Errorf("getting note: %w", err)
	}
	if note == nil {
		return noteNotFound(ctx)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.NewNoteResponse(note))
}

// CreateNote создает заметку.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return services.ErrUnauthorized
	}
	req, ok := middleware.Body[dto.NoteRequest](ctx)
	if !ok {
		return fmt.Errorf("create note: %w", fiber.ErrBadRequest)
	}

	note, err := h.notes.Create(requestCtx, entities.NewNote{
		Title:   req.Title,
		Content: req.Content,
		UserID:  identity.ID,
	})
	if err != nil {
		return fmt.Errorf("creating note: %w", err)
	}

	return sendJSON(ctx, fiber.StatusCreated, dto.NewNoteResponse(note))
}

// UpdateNote заменяет заголовок и текст заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return services.ErrUnauthorized
	}
	req, ok := middleware.Body[dto.NoteRequest](ctx)
	if !ok {
		return fmt.Errorf("update note: %w", fiber.ErrBadRequest)
	}

	note, err := h.notes.Update(requestCtx, ctx.Params(paramNoteID), identity.ID, entities.NoteUpdate{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return noteNotFound(ctx)
		}
		return fmt.Errorf("updating note: %w", err)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.NewNoteResponse(note))
}

// DeleteNote удаляет заметку.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return services.ErrUnauthorized
	}

	if err := h.notes.Delete(requestCtx, ctx.Params(paramNoteID), identity.ID); err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return noteNotFound(ctx)
		}
		return fmt.Errorf("deleting note: %w", err)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.MessageResponse{Message: MsgNoteDeleted})
}

func noteNotFound(ctx fiber.Ctx) error {
	return sendJSON(ctx, fiber.StatusNotFound, dto.MessageResponse{Message: MsgNoteNotFound})
}

func sendJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
