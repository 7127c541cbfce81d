// Package api определяет порты прикладного слоя.
package api

import (
	"context"

	"notetaking/internal/domain/entities"
)

// AuthUseCase создает пользователей.
type AuthUseCase interface {
	Register(ctx context.Context, email, passwordHash string) (*entities.User, error)
}

// UserUseCase ищет пользователей.
type UserUseCase interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
