package api

import (
	"context"

	"notetaking/internal/domain/entities"
)

// NoteUseCase определяет операции над заметками пользователя.
type NoteUseCase interface {
	ListByUser(ctx context.Context, userID string) ([]entities.NoteSummary, error)

	GetByIDForUser(ctx context.Context, id, userID string) (*entities.Note, error)

	Create(ctx context.Context, note entities.NewNote) (*entities.Note, error)

	Update(ctx context.Context, id, userID string, update entities.NoteUpdate) (*entities.Note, error)

	Delete(ctx context.Context, id, userID string) error
}
