package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRows(id int64, username string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{"id", "username", "password_hash", "is_active", "created_at", "updated_at"}).
		AddRow(id, username, "hashed", true, now, now)
}

func TestUserCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hashed").
		WillReturnRows(userRows(1, "alice"))

	repo := NewUserRepository(mock)
	user, err := repo.Create(context.Background(), "alice", "hashed")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsActive)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hashed").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	repo := NewUserRepository(mock)
	_, err = repo.Create(context.Background(), "alice", "hashed")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByUsername_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, username, password_hash").
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "is_active", "created_at", "updated_at"}))

	repo := NewUserRepository(mock)
	_, err = repo.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("UPDATE users SET is_active").
		WithArgs(int64(1), false).
		WillReturnRows(
			pgxmock.NewRows([]string{"id", "username", "password_hash", "is_active", "created_at", "updated_at"}).
				AddRow(int64(1), "alice", "hashed", false, time.Now(), time.Now()),
		)

	repo := NewUserRepository(mock)
	user, err := repo.UpdateActive(context.Background(), 1, false)
	require.NoError(t, err)
	assert.False(t, user.IsActive)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByID_PassesThroughUnknownErrors(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(7)).
		WillReturnError(boom)

	repo := NewUserRepository(mock)
	_, err = repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}
