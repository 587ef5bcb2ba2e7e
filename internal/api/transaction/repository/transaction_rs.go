package transactionRepository

import (
	"ReceiptTracker/internal/api/transaction"
	"ReceiptTracker/internal/entity"
	contextPkg "ReceiptTracker/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type TransactionDB struct {
	ID          sql.NullInt64  `db:"id"`
	UserID      sql.NullInt64  `db:"user_id"`
	Merchant    sql.NullString `db:"merchant"`
	Description sql.NullString `db:"description"`
	Date        sql.NullTime   `db:"date"`
	CreatedAt   sql.NullTime   `db:"created_at"`
}

func (r *transactionRepository) CreateTransaction(ctx context.Context, t entity.Transaction) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	argsKV := map[string]interface{}{
		"user_id":     t.UserID,
		"merchant":    t.Merchant,
		"description": t.Description,
		"date":        entity.FormatDate(t.Date),
		"created_at":  createdAt,
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return 0, err
	}

	return id, nil
}

func (r *transactionRepository) GetTransactionByID(ctx context.Context, id int64) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row TransactionDB

	query, args, err := sqlx.Named(queryGetTransactionByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":     requestID,
				"transaction_id": id,
			}).Warn("GetTransactionByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(row), nil
}

func (r *transactionRepository) GetTransactionsByUserID(ctx context.Context, userID int64, page entity.Page) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []TransactionDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   page.Size,
		"offset":  page.Offset(),
	}

	query, args, err := sqlx.Named(queryGetTransactionsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionsByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionsByUserID execution err")
		return nil, err
	}

	transactions := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, r.makeTransaction(row))
	}

	return transactions, nil
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, t entity.Transaction) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":          t.ID,
		"merchant":    t.Merchant,
		"description": t.Description,
		"date":        entity.FormatDate(t.Date),
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateTransaction")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating transaction")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return transaction.ErrTransactionNotFound
	}

	return nil
}

// DeleteTransaction removes the transaction and, by cascade, its purchases.
func (r *transactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteTransaction, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteTransaction")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) makeTransaction(row TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:          row.ID.Int64,
		UserID:      row.UserID.Int64,
		Merchant:    row.Merchant.String,
		Description: row.Description.String,
		Date:        row.Date.Time,
		CreatedAt:   row.CreatedAt.Time,
	}
}
