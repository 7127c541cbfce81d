package entities

import (
	"errors"
	"time"
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound = errors.New("note not found")
)

// Note представляет заметку, принадлежащую одному пользователю.
type Note struct {
	ID        string
	Title     string
	Content   string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteSummary - заметка в составе списка.
type NoteSummary struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote - данные для создания заметки. UserID задается сервером.
type NewNote struct {
	Title   string
	Content string
	UserID  string
}

// NoteUpdate - изменяемые поля заметки.
type NoteUpdate struct {
	Title   string
	Content string
}
