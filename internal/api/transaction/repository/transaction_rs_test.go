package transactionRepository

import (
	"ReceiptTracker/internal/api/transaction"
	"ReceiptTracker/internal/entity"
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	client, err := New(sqlx.NewDb(db, "postgres"), log).NewClient(context.Background(), false)
	require.NoError(t, err)
	return client, mock
}

var transactionColumns = []string{"id", "user_id", "merchant", "description", "date", "created_at"}

func TestCreateTransactionBindsDateAsCalendarDay(t *testing.T) {
	client, mock := newTestClient(t)
	date, err := entity.ParseDate("2024-02-29")
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO transactions`).
		WithArgs(int64(1), "Target", "weekly run", "2024-02-29", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	id, err := client.Transaction.CreateTransaction(context.Background(), entity.Transaction{
		UserID:      1,
		Merchant:    "Target",
		Description: "weekly run",
		Date:        date,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionsByUserIDPaginates(t *testing.T) {
	client, mock := newTestClient(t)
	now := time.Now().UTC()
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(int64(1), 10, 10).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(int64(12), int64(1), "Costco", "", day, now).
			AddRow(int64(11), int64(1), "Target", "weekly run", day, now.Add(-time.Minute)))

	got, err := client.Transaction.GetTransactionsByUserID(context.Background(), 1, entity.Page{Number: 2, Size: 10})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(12), got[0].ID)
	assert.Equal(t, "2024-01-02", entity.FormatDate(got[1].Date))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionByIDNotFound(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`FROM transactions`).WithArgs(int64(5)).WillReturnError(sql.ErrNoRows)

	_, err := client.Transaction.GetTransactionByID(context.Background(), 5)
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
}

func TestUpdateTransaction(t *testing.T) {
	client, mock := newTestClient(t)
	date, _ := entity.ParseDate("2022-12-31")

	mock.ExpectExec(`UPDATE transactions`).
		WithArgs("Aldi", "", "2022-12-31", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := client.Transaction.UpdateTransaction(context.Background(), entity.Transaction{ID: 4, Merchant: "Aldi", Date: date})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTransaction(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectExec(`DELETE FROM transactions`).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, client.Transaction.DeleteTransaction(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}
