package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notetaking/internal/domain/entities"
	"notetaking/internal/ports/api"
	"notetaking/internal/ports/repositories"
	"notetaking/pkg/logger"
)

const (
	methodFindByEmail = "FindByEmail"

	msgLookingUpUser = "looking up user by email"
	msgUserAbsent    = "user with this email does not exist"

	msgErrFindingUser = "error finding user by email"

	errCtxFindingUser = "finding user"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр сервиса пользователя.
func NewUserUseCase(userRepo repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{userRepo: userRepo}
}

// FindByEmail возвращает пользователя или (nil, nil), если его нет.
func (u *UserUseCaseImpl) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodFindByEmail), zap.String("email", email))
	log.Debug(ctx, msgLookingUpUser)

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUserAbsent)
			return nil, nil
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	return user, nil
}
