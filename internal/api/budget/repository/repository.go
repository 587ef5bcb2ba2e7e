package budgetRepository

import (
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/internal/ownership"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
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
		txx, err := r.DB.BeginTxx(ctx, nil)
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
		Budget:    &budgetRepository{q: sqlExecutor, log: r.log},
		Ownership: ownership.New(sqlExecutor, r.log),
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Budget interface {
		CreateBudget(ctx context.Context, budget entity.Budget) (int64, error)
		GetBudgetByID(ctx context.Context, id int64) (entity.Budget, error)
		GetBudgetByUserID(ctx context.Context, userID int64) (entity.Budget, error)
		UpdateBudget(ctx context.Context, budget entity.Budget) error
		DeleteBudget(ctx context.Context, id int64) error
	}

	Ownership ownership.Checker

	Commit   func() error
	Rollback func() error
}

type budgetRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
