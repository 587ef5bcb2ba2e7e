package userRepository

import (
	"ReceiptTracker/internal/api/user"
	"ReceiptTracker/internal/entity"
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, tx bool) (Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	if tx {
		mock.ExpectBegin()
	}
	client, err := New(sqlx.NewDb(db, "postgres"), log).NewClient(context.Background(), tx)
	require.NoError(t, err)
	return client, mock
}

func TestCreateUser(t *testing.T) {
	client, mock := newTestClient(t, false)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ann", "ann@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := client.User.CreateUser(context.Background(), entity.User{Name: "Ann", Email: "ann@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID(t *testing.T) {
	client, mock := newTestClient(t, false)
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, name, email, created_at FROM users`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}).
			AddRow(int64(7), "Ann", "ann@example.com", created))

	got, err := client.User.GetUserByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, entity.User{ID: 7, Name: "Ann", Email: "ann@example.com", CreatedAt: created}, got)
}

func TestGetUserByIDNotFound(t *testing.T) {
	client, mock := newTestClient(t, false)

	mock.ExpectQuery(`FROM users`).WithArgs(int64(8)).WillReturnError(sql.ErrNoRows)

	_, err := client.User.GetUserByID(context.Background(), 8)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateUserMissing(t *testing.T) {
	client, mock := newTestClient(t, false)

	mock.ExpectExec(`UPDATE users`).
		WithArgs("Bea", "bea@example.com", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := client.User.UpdateUser(context.Background(), entity.User{ID: 3, Name: "Bea", Email: "bea@example.com"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDeleteUserInTransaction(t *testing.T) {
	client, mock := newTestClient(t, true)

	mock.ExpectExec(`DELETE FROM users`).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, client.User.DeleteUser(context.Background(), 3))
	require.NoError(t, client.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserDatabaseError(t *testing.T) {
	client, mock := newTestClient(t, false)
	dbErr := errors.New("connection refused")

	mock.ExpectExec(`DELETE FROM users`).WillReturnError(dbErr)

	assert.ErrorIs(t, client.User.DeleteUser(context.Background(), 3), dbErr)
}
