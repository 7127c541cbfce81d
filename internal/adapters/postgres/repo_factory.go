package postgres

import (
	"notetaking/internal/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo repositories.UserRepository
	noteRepo repositories.NoteRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo: NewUserRepository(pool),
		noteRepo: NewNoteRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// NoteRepository возвращает репозиторий заметок.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return f.noteRepo
}
