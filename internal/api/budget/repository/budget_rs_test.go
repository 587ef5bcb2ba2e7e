package budgetRepository

import (
	"ReceiptTracker/internal/api/budget"
	"ReceiptTracker/internal/entity"
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
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

func amount(v int64) *int64 {
	return &v
}

func budgetRow(id, userID int64, limits entity.BudgetLimits) *sqlmock.Rows {
	columns := []string{"id", "user_id"}
	values := []driver.Value{id, userID}
	for _, c := range entity.Categories {
		columns = append(columns, c.Key())
		if v := limits.Get(c); v != nil {
			values = append(values, *v)
		} else {
			values = append(values, nil)
		}
	}
	return sqlmock.NewRows(columns).AddRow(values...)
}

func TestCreateBudget(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`INSERT INTO budgets`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	id, err := client.Budget.CreateBudget(context.Background(), entity.Budget{
		UserID: 1,
		Limits: entity.BudgetLimits{Groceries: amount(100)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBudgetDuplicate(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`INSERT INTO budgets`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := client.Budget.CreateBudget(context.Background(), entity.Budget{UserID: 1})
	assert.ErrorIs(t, err, budget.ErrBudgetAlreadyExists)
}

func TestGetBudgetByUserIDKeepsNulls(t *testing.T) {
	client, mock := newTestClient(t)
	limits := entity.BudgetLimits{Groceries: amount(100), Pets: amount(0)}

	mock.ExpectQuery(`FROM budgets WHERE user_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(budgetRow(4, 1, limits))

	got, err := client.Budget.GetBudgetByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, limits, got.Limits)
	assert.Nil(t, got.Limits.Travel)
}

func TestGetBudgetByIDNotFound(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`FROM budgets WHERE id = \$1`).WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

	_, err := client.Budget.GetBudgetByID(context.Background(), 9)
	assert.ErrorIs(t, err, budget.ErrBudgetNotFound)
}

func TestUpdateBudget(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectExec(`UPDATE budgets`).WillReturnResult(sqlmock.NewResult(0, 1))

	err := client.Budget.UpdateBudget(context.Background(), entity.Budget{ID: 4, Limits: entity.BudgetLimits{Other: amount(5)}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBudget(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectExec(`DELETE FROM budgets`).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, client.Budget.DeleteBudget(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}
