package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notetaking/internal/domain/entities"
	"notetaking/internal/ports/repositories"
	"notetaking/pkg/logger"
)

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// ListByUser получает заметки пользователя, отсортированные по updated_at.
func (r *NoteRepository) ListByUser(ctx context.Context, userID string) ([]entities.NoteSummary, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByUser"))
	log.Debug(ctx, "listing notes", zap.String("userID", userID))

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, content, created_at, updated_at
         FROM notes
         WHERE user_id = $1
         ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]entities.NoteSummary, 0)
	for rows.Next() {
		var note entities.NoteSummary
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}

// GetByIDForUser получает заметку по ID и ID пользователя.
func (r *NoteRepository) GetByIDForUser(ctx context.Context, id, userID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByIDForUser"))
	log.Debug(ctx, "getting note", zap.String("noteID", id), zap.String("userID", userID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, content, user_id, created_at, updated_at
         FROM notes
         WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&note.ID, &note.Title, &note.Content, &note.UserID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", id))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, input entities.NewNote) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", input.UserID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (title, content, user_id, updated_at)
         VALUES ($1, $2, $3, now())
         RETURNING id, title, content, user_id, created_at, updated_at`,
		input.Title, input.Content, input.UserID,
	).Scan(&note.ID, &note.Title, &note.Content, &note.UserID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", note.ID))
	return &note, nil
}

// Update обновляет заметку одним запросом с проверкой владельца.
func (r *NoteRepository) Update(ctx context.Context, id, userID string, update entities.NoteUpdate) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", id), zap.String("userID", userID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`UPDATE notes
         SET title = $3, content = $4, updated_at = now()
         WHERE id = $1 AND user_id = $2
         RETURNING id, title, content, user_id, created_at, updated_at`,
		id, userID, update.Title, update.Content,
	).Scan(&note.ID, &note.Title, &note.Content, &note.UserID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found for update", zap.String("noteID", id))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &note, nil
}

// Delete удаляет заметку с проверкой владельца.
func (r *NoteRepository) Delete(ctx context.Context, id, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", id), zap.String("userID", userID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found for deletion", zap.String("noteID", id))
		return entities.ErrNoteNotFound
	}

	return nil
}
