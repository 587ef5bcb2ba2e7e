package reportRepository

import (
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/internal/ownership"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(ctx context.Context, tx bool) (Client, error)
}

func (r *repository) NewClient(ctx context.Context, tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Report:    &reportRepository{q: sqlExecutor, log: r.log},
		Ownership: ownership.New(sqlExecutor, r.log),
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Report interface {
		GetCategoryTotalsByUserID(ctx context.Context, userID int64) ([]entity.CategoryTotal, error)
		GetCategoryTotalsByUserIDInRange(ctx context.Context, userID int64, from, to time.Time) ([]entity.CategoryTotal, error)
		GetCategoryTotalsByTransactionID(ctx context.Context, transactionID int64) ([]entity.CategoryTotal, error)
		GetBudgetLimitsByUserID(ctx context.Context, userID int64) (entity.BudgetLimits, error)
	}

	Ownership ownership.Checker

	Commit   func() error
	Rollback func() error
}

type reportRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
