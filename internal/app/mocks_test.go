package app_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"notetaking/internal/domain/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) ListByUser(ctx context.Context, userID string) ([]entities.NoteSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.NoteSummary), args.Error(1)
}

func (m *mockNoteRepository) GetByIDForUser(ctx context.Context, id, userID string) (*entities.Note, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Create(ctx context.Context, note entities.NewNote) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, id, userID string, update entities.NoteUpdate) (*entities.Note, error) {
	args := m.Called(ctx, id, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type mockURLSigner struct {
	mock.Mock
}

func (m *mockURLSigner) SignUpload(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, ttl)
	return args.String(0), args.Error(1)
}

func (m *mockURLSigner) SignDownload(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}
