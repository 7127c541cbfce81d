package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"notetaking/internal/domain/entities"
	"notetaking/internal/ports/api"
	"notetaking/internal/ports/repositories"
	"notetaking/pkg/logger"
)

const (
	methodListNotes  = "ListByUser"
	methodGetNote    = "GetByIDForUser"
	methodCreateNote = "Create"
	methodUpdateNote = "Update"
	methodDeleteNote = "Delete"

	msgListingNotes   = "listing notes"
	msgNotesListed    = "notes listed"
	msgGettingNote    = "getting note"
	msgNoteNotFound   = "note not found"
	msgMalformedID    = "malformed note id treated as not found"
	msgCreatingNote   = "creating note"
	msgNoteCreated    = "note created"
	msgUpdatingNote   = "updating note"
	msgNoteUpdated    = "note updated"
	msgDeletingNote   = "deleting note"
	msgNoteDeleted    = "note deleted"
	msgErrNoteStorage = "note storage error"

	errCtxListingNotes = "listing notes"
	errCtxGettingNote  = "getting note"
	errCtxCreatingNote = "creating note"
	errCtxUpdatingNote = "updating note"
	errCtxDeletingNote = "deleting note"
)

// NoteUseCaseImpl реализует интерфейс NoteUseCase.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр сервиса заметок.
func NewNoteUseCase(noteRepo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{noteRepo: noteRepo}
}

// ListByUser возвращает заметки пользователя, новые изменения первыми.
func (n *NoteUseCaseImpl) ListByUser(ctx context.Context, userID string) ([]entities.NoteSummary, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes), zap.String("userID", userID))
	log.Debug(ctx, msgListingNotes)

	notes, err := n.noteRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrNoteStorage, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}
	if notes == nil {
		notes = []entities.NoteSummary{}
	}

	log.Debug(ctx, msgNotesListed, zap.Int("count", len(notes)))
	return notes, nil
}

// GetByIDForUser возвращает заметку или (nil, nil), если она не найдена
// или принадлежит другому пользователю.
func (n *NoteUseCaseImpl) GetByIDForUser(ctx context.Context, id, userID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetNote), zap.String("noteID", id), zap.String("userID", userID))
	log.Debug(ctx, msgGettingNote)

	if !isNoteID(id) {
		log.Debug(ctx, msgMalformedID)
		return nil, nil
	}

	note, err := n.noteRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			log.Debug(ctx, msgNoteNotFound)
			return nil, nil
		}
		log.Error(ctx, msgErrNoteStorage, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGettingNote, err)
	}

	return note, nil
}

// Create сохраняет новую заметку владельца note.UserID.
func (n *NoteUseCaseImpl) Create(ctx context.Context, note entities.NewNote) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.String("userID", note.UserID))
	log.Debug(ctx, msgCreatingNote)

	created, err := n.noteRepo.Create(ctx, note)
	if err != nil {
		log.Error(ctx, msgErrNoteStorage, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", created.ID))
	return created, nil
}

// Update изменяет заметку. Возвращает entities.ErrNoteNotFound, если пара (id, userID) не найдена.
func (n *NoteUseCaseImpl) Update(ctx context.Context, id, userID string, update entities.NoteUpdate) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateNote), zap.String("noteID", id), zap.String("userID", userID))
	log.Debug(ctx, msgUpdatingNote)

	if !isNoteID(id) {
		log.Debug(ctx, msgMalformedID)
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, entities.ErrNoteNotFound)
	}

	note, err := n.noteRepo.Update(ctx, id, userID, update)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			log.Debug(ctx, msgNoteNotFound)
		} else {
			log.Error(ctx, msgErrNoteStorage, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Info(ctx, msgNoteUpdated)
	return note, nil
}

// Delete удаляет заметку. Возвращает entities.ErrNoteNotFound, если пара (id, userID) не найдена.
func (n *NoteUseCaseImpl) Delete(ctx context.Context, id, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteNote), zap.String("noteID", id), zap.String("userID", userID))
	log.Debug(ctx, msgDeletingNote)

	if !isNoteID(id) {
		log.Debug(ctx, msgMalformedID)
		return fmt.Errorf("%s: %w", errCtxDeletingNote, entities.ErrNoteNotFound)
	}

	if err := n.noteRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			log.Debug(ctx, msgNoteNotFound)
		} else {
			log.Error(ctx, msgErrNoteStorage, zap.Error(err))
		}
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	log.Info(ctx, msgNoteDeleted)
	return nil
}

func isNoteID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
