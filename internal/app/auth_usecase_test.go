package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notetaking/internal/app"
	"notetaking/internal/domain/entities"
	"notetaking/internal/domain/services"
)

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("успешная регистрация", func(t *testing.T) {
		repo := new(mockUserRepository)
		created := &entities.User{ID: "u-1", Email: "a@b.c", PasswordHash: "hash", CreatedAt: time.Now()}
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.Email == "a@b.c" && u.PasswordHash == "hash" && u.ID == ""
		})).Return(created, nil)

		user, err := app.NewAuthUseCase(repo).Register(ctx, "a@b.c", "hash")
		require.NoError(t, err)
		assert.Equal(t, created, user)
		repo.AssertExpectations(t)
	})

	t.Run("дубликат email", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, services.ErrEmailAlreadyExists)

		user, err := app.NewAuthUseCase(repo).Register(ctx, "a@b.c", "hash")
		require.ErrorIs(t, err, services.ErrEmailAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("ошибка хранилища", func(t *testing.T) {
		repo := new(mockUserRepository)
		dbErr := errors.New("connection refused")
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, dbErr)

		_, err := app.NewAuthUseCase(repo).Register(ctx, "a@b.c", "hash")
		require.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, services.ErrEmailAlreadyExists)
	})
}

func TestUserUseCase_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(mockUserRepository)
		want := &entities.User{ID: "u-1", Email: "a@b.c"}
		repo.On("FindByEmail", mock.Anything, "a@b.c").Return(want, nil)

		user, err := app.NewUserUseCase(repo).FindByEmail(ctx, "a@b.c")
		require.NoError(t, err)
		assert.Same(t, want, user)
	})

	t.Run("absence is not an error", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", mock.Anything, "none@b.c").Return(nil, entities.ErrUserNotFound)

		user, err := app.NewUserUseCase(repo).FindByEmail(ctx, "none@b.c")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("storage error", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", mock.Anything, "a@b.c").Return(nil, errors.New("boom"))

		user, err := app.NewUserUseCase(repo).FindByEmail(ctx, "a@b.c")
		require.Error(t, err)
		assert.Nil(t, user)
	})
}
