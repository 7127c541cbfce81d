package repositories

import (
	"context"

	"notetaking/internal/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
