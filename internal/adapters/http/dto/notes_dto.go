package dto

import (
	"strings"
	"time"

	"notetaking/internal/domain/entities"
)

// NoteRequest содержит данные для создания и обновления заметки.
type NoteRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// Normalize обрезает пробелы по краям.
func (r *NoteRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

// NoteResponse - полная заметка.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteSummaryResponse - элемент списка заметок.
type NoteSummaryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewNoteResponse преобразует сущность в ответ.
func NewNoteResponse(note *entities.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		UserID:    note.UserID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// NewNoteSummaries преобразует список; пустой список сериализуется как [].
func NewNoteSummaries(notes []entities.NoteSummary) []NoteSummaryResponse {
	out := make([]NoteSummaryResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NoteSummaryResponse{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
	}
	return out
}
