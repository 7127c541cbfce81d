// Package repositories определяет порты хранилища.
package repositories

import (
	"context"

	"notetaking/internal/domain/entities"
)

// NoteRepository определяет операции над заметками. Все операции,
// кроме Create, ограничены парой (id, userID).
type NoteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entities.NoteSummary, error)

	GetByIDForUser(ctx context.Context, id, userID string) (*entities.Note, error)

	Create(ctx context.Context, note entities.NewNote) (*entities.Note, error)

	Update(ctx context.Context, id, userID string, update entities.NoteUpdate) (*entities.Note, error)

	Delete(ctx context.Context, id, userID string) error
}
