package postgres

import (
	"context"
	"testing"
	"time"

	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/platform/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*UsersRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUsersRepo(db), mock
}

func TestUsersRepo_CreateDuplicateEmailIsConflict(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("u-1", "Ana", "ana@mail.com", "+5511999999999", "hash", "", now, now).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), users.User{
		ID: "u-1", Name: "Ana", Email: "ana@mail.com", Phone: "+5511999999999",
		PasswordHash: "hash", CreatedAt: now, UpdatedAt: now,
	})
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersRepo_GetByEmail(t *testing.T) {
	repo, mock := newMock(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "password_hash", "image", "created_at", "updated_at"}).
		AddRow("u-1", "Ana", "ana@mail.com", "+5511999999999", "hash", "a.png", created, created)
	mock.ExpectQuery("FROM users WHERE email = \\$1").WithArgs("ana@mail.com").WillReturnRows(rows)

	u, err := repo.GetByEmail(context.Background(), "ana@mail.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "a.png", u.Image)
	assert.Equal(t, created, u.CreatedAt)
}

func TestUsersRepo_GetByIDMissing(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM users WHERE id = \\$1").WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	// id vacío no llega a la DB
	_, err = repo.GetByID(context.Background(), "  ")
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersRepo_UpdateMissingRow(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), users.User{ID: "u-9", UpdatedAt: time.Now()})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
