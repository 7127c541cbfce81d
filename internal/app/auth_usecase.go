// Package app содержит прикладные сценарии: регистрацию, поиск пользователей,
// работу с заметками и выдачу ссылок на изображения.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notetaking/internal/domain/entities"
	"notetaking/internal/domain/services"
	"notetaking/internal/ports/api"
	"notetaking/internal/ports/repositories"
	"notetaking/pkg/logger"
)

const (
	methodRegister = "Register"

	msgStartRegistration = "starting user registration"
	msgEmailExists       = "user with this email already exists"
	msgUserRegistered    = "user registered successfully"

	msgErrCreateUser = "failed to create user"

	errCtxCreatingUser = "creating user"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(userRepo repositories.UserRepository) api.AuthUseCase {
	return &AuthUseCaseImpl{userRepo: userRepo}
}

// Register сохраняет пользователя с уже захэшированным паролем.
func (a *AuthUseCaseImpl) Register(ctx context.Context, email, passwordHash string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	user, err := a.userRepo.Create(ctx, &entities.User{
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			log.Debug(ctx, msgEmailExists)
			return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", user.ID))
	return user, nil
}
