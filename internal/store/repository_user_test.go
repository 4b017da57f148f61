package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("hiruna", "bcrypt-hash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "password_hash", "created_at"}).
			AddRow(int64(1), "hiruna", "bcrypt-hash", time.Now()))

	got, err := repo.CreateUser(context.Background(), models.User{Login: "hiruna", PasswordHash: "bcrypt-hash"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "hiruna", got.Login)
	assert.False(t, got.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_LoginAlreadyExists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateUser(context.Background(), models.User{Login: "hiruna", PasswordHash: "h"})

	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestFindUserByLogin_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("hiruna").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "password_hash", "created_at"}).
			AddRow(int64(7), "hiruna", "bcrypt-hash", time.Now()))

	got, err := repo.FindUserByLogin(context.Background(), "hiruna")

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "password_hash", "created_at"}))

	_, err := repo.FindUserByLogin(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
