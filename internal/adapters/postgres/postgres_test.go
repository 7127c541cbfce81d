package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notetaking/internal/adapters/postgres"
	"notetaking/internal/domain/entities"
	"notetaking/internal/domain/services"
	"notetaking/internal/ports/repositories"
	"notetaking/pkg/logger"
)

var errDatabaseConnection = errors.New("database connection error")

const (
	testUserID  = "1f0e2d3c-4b5a-6978-8a9b-0c1d2e3f4a5b"
	otherUserID = "7a6b5c4d-3e2f-1a0b-9c8d-7e6f5a4b3c2d"
	testNoteID  = "9b2c7a8e-3f5d-4c1a-8e6b-2d4f6a8c0e1b"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepositoryFactory(t *testing.T) {
	mock := newMock(t)

	factory := postgres.NewRepositoryFactory(mock)
	require.NotNil(t, factory)

	assert.Implements(t, (*repositories.UserRepository)(nil), factory.UserRepository())
	assert.Implements(t, (*repositories.NoteRepository)(nil), factory.NoteRepository())
	assert.Same(t, factory.UserRepository(), factory.UserRepository(), "multiple calls should return the same repository instance")
	assert.Same(t, factory.NoteRepository(), factory.NoteRepository())
}

func TestUserRepository_Create(t *testing.T) {
	ctx := testContext(t)
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("successful creation", func(t *testing.T) {
		mock := newMock(t)
		rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(testUserID, "a@b.c", "hash", createdAt)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("a@b.c", "hash").
			WillReturnRows(rows)

		user, err := postgres.NewUserRepository(mock).Create(ctx, &entities.User{Email: "a@b.c", PasswordHash: "hash"})
		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
		assert.Equal(t, "a@b.c", user.Email)
		assert.Equal(t, createdAt, user.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to duplicate email", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("a@b.c", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		user, err := postgres.NewUserRepository(mock).Create(ctx, &entities.User{Email: "a@b.c", PasswordHash: "hash"})
		require.ErrorIs(t, err, services.ErrEmailAlreadyExists)
		assert.Nil(t, user)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("a@b.c", "hash").
			WillReturnError(errDatabaseConnection)

		_, err := postgres.NewUserRepository(mock).Create(ctx, &entities.User{Email: "a@b.c", PasswordHash: "hash"})
		require.ErrorIs(t, err, errDatabaseConnection)
		assert.Contains(t, err.Error(), "error creating user")
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := testContext(t)

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(testUserID, "a@b.c", "hash", time.Now())
		mock.ExpectQuery("SELECT id, email, password_hash, created_at").
			WithArgs("a@b.c").
			WillReturnRows(rows)

		user, err := postgres.NewUserRepository(mock).FindByEmail(ctx, "a@b.c")
		require.NoError(t, err)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT id, email, password_hash, created_at").
			WithArgs("none@b.c").
			WillReturnError(pgx.ErrNoRows)

		user, err := postgres.NewUserRepository(mock).FindByEmail(ctx, "none@b.c")
		require.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT id, email, password_hash, created_at").
			WithArgs("a@b.c").
			WillReturnError(errDatabaseConnection)

		_, err := postgres.NewUserRepository(mock).FindByEmail(ctx, "a@b.c")
		require.ErrorIs(t, err, errDatabaseConnection)
	})
}

var noteColumns = []string{"id", "title", "content", "user_id", "created_at", "updated_at"}

func TestNoteRepository_ListByUser(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC()

	t.Run("ordered by updated_at desc", func(t *testing.T) {
		mock := newMock(t)
		rows := pgxmock.NewRows([]string{"id", "title", "content", "created_at", "updated_at"}).
			AddRow("n2", "newer", "c", now.Add(-time.Hour), now).
			AddRow("n1", "older", "c", now.Add(-2*time.Hour), now.Add(-time.Minute))
		mock.ExpectQuery("FROM notes\\s+WHERE user_id = \\$1\\s+ORDER BY updated_at DESC").
			WithArgs(testUserID).
			WillReturnRows(rows)

		notes, err := postgres.NewNoteRepository(mock).ListByUser(ctx, testUserID)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "n2", notes[0].ID)
		assert.Equal(t, "n1", notes[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM notes").
			WithArgs(testUserID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "title", "content", "created_at", "updated_at"}))

		notes, err := postgres.NewNoteRepository(mock).ListByUser(ctx, testUserID)
		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("query error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM notes").WithArgs(testUserID).WillReturnError(errDatabaseConnection)

		_, err := postgres.NewNoteRepository(mock).ListByUser(ctx, testUserID)
		require.ErrorIs(t, err, errDatabaseConnection)
	})

	t.Run("row error", func(t *testing.T) {
		mock := newMock(t)
		rows := pgxmock.NewRows([]string{"id", "title", "content", "created_at", "updated_at"}).
			AddRow("n1", "t", "c", now, now).
			RowError(0, errDatabaseConnection)
		mock.ExpectQuery("FROM notes").WithArgs(testUserID).WillReturnRows(rows)

		_, err := postgres.NewNoteRepository(mock).ListByUser(ctx, testUserID)
		require.Error(t, err)
	})
}

func TestNoteRepository_GetByIDForUser(t *testing.T) {
	ctx := testContext(t)

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		rows := pgxmock.NewRows(noteColumns).AddRow(testNoteID, "t", "c", testUserID, time.Now(), time.Now())
		mock.ExpectQuery("WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(testNoteID, testUserID).
			WillReturnRows(rows)

		note, err := postgres.NewNoteRepository(mock).GetByIDForUser(ctx, testNoteID, testUserID)
		require.NoError(t, err)
		assert.Equal(t, testUserID, note.UserID)
	})

	t.Run("other user's note is not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(testNoteID, otherUserID).
			WillReturnError(pgx.ErrNoRows)

		note, err := postgres.NewNoteRepository(mock).GetByIDForUser(ctx, testNoteID, otherUserID)
		require.ErrorIs(t, err, entities.ErrNoteNotFound)
		assert.Nil(t, note)
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM notes").WithArgs(testNoteID, testUserID).WillReturnError(errDatabaseConnection)

		_, err := postgres.NewNoteRepository(mock).GetByIDForUser(ctx, testNoteID, testUserID)
		require.ErrorIs(t, err, errDatabaseConnection)
		assert.NotErrorIs(t, err, entities.ErrNoteNotFound)
	})
}

func TestNoteRepository_Create(t *testing.T) {
	ctx := testContext(t)

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		now := time.Now()
		rows := pgxmock.NewRows(noteColumns).AddRow(testNoteID, "t", "c", testUserID, now, now)
		mock.ExpectQuery("INSERT INTO notes").
			WithArgs("t", "c", testUserID).
			WillReturnRows(rows)

		note, err := postgres.NewNoteRepository(mock).Create(ctx, entities.NewNote{Title: "t", Content: "c", UserID: testUserID})
		require.NoError(t, err)
		assert.Equal(t, testNoteID, note.ID)
		assert.Equal(t, now, note.UpdatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO notes").WithArgs("t", "c", testUserID).WillReturnError(errDatabaseConnection)

		_, err := postgres.NewNoteRepository(mock).Create(ctx, entities.NewNote{Title: "t", Content: "c", UserID: testUserID})
		require.ErrorIs(t, err, errDatabaseConnection)
	})
}

func TestNoteRepository_Update(t *testing.T) {
	ctx := testContext(t)
	update := entities.NoteUpdate{Title: "t2", Content: "c2"}

	t.Run("single statement scoped by owner", func(t *testing.T) {
		mock := newMock(t)
		now := time.Now()
		rows := pgxmock.NewRows(noteColumns).AddRow(testNoteID, "t2", "c2", testUserID, now.Add(-time.Hour), now)
		mock.ExpectQuery("UPDATE notes\\s+SET title = \\$3, content = \\$4, updated_at = now\\(\\)\\s+WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(testNoteID, testUserID, "t2", "c2").
			WillReturnRows(rows)

		note, err := postgres.NewNoteRepository(mock).Update(ctx, testNoteID, testUserID, update)
		require.NoError(t, err)
		assert.Equal(t, "t2", note.Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("UPDATE notes").
			WithArgs(testNoteID, otherUserID, "t2", "c2").
			WillReturnError(pgx.ErrNoRows)

		_, err := postgres.NewNoteRepository(mock).Update(ctx, testNoteID, otherUserID, update)
		require.ErrorIs(t, err, entities.ErrNoteNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("UPDATE notes").
			WithArgs(testNoteID, testUserID, "t2", "c2").
			WillReturnError(errDatabaseConnection)

		_, err := postgres.NewNoteRepository(mock).Update(ctx, testNoteID, testUserID, update)
		require.ErrorIs(t, err, errDatabaseConnection)
	})
}

func TestNoteRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("deleted", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("DELETE FROM notes WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(testNoteID, testUserID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, postgres.NewNoteRepository(mock).Delete(ctx, testNoteID, testUserID))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second delete finds nothing", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("DELETE FROM notes").
			WithArgs(testNoteID, testUserID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := postgres.NewNoteRepository(mock).Delete(ctx, testNoteID, testUserID)
		require.ErrorIs(t, err, entities.ErrNoteNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("DELETE FROM notes").
			WithArgs(testNoteID, testUserID).
			WillReturnError(errDatabaseConnection)

		err := postgres.NewNoteRepository(mock).Delete(ctx, testNoteID, testUserID)
		require.ErrorIs(t, err, errDatabaseConnection)
	})
}
