package purchaseRepository

import (
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/internal/ownership"
	"context"

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
		Purchase:  &purchaseRepository{q: sqlExecutor, log: r.log},
		Ownership: ownership.New(sqlExecutor, r.log),
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Purchase interface {
		CreatePurchase(ctx context.Context, purchase entity.Purchase) (int64, error)
		GetPurchaseByID(ctx context.Context, id int64) (entity.Purchase, error)
		GetPurchasesByTransactionID(ctx context.Context, transactionID int64, sort entity.PurchaseSort) ([]entity.Purchase, error)
		UpdatePurchase(ctx context.Context, purchase entity.Purchase) error
		DeletePurchase(ctx context.Context, id int64) error
	}

	Ownership ownership.Checker

	Commit   func() error
	Rollback func() error
}

type purchaseRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
