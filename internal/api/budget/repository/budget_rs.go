package budgetRepository

import (
	"ReceiptTracker/internal/api/budget"
	"ReceiptTracker/internal/entity"
	contextPkg "ReceiptTracker/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const uniqueViolation = "23505"

type BudgetDB struct {
	ID     sql.NullInt64 `db:"id"`
	UserID sql.NullInt64 `db:"user_id"`
	entity.BudgetLimits
}

func limitArgs(limits entity.BudgetLimits) map[string]interface{} {
	argsKV := make(map[string]interface{}, len(entity.Categories)+1)
	for key, amount := range limits.ByKey() {
		argsKV[key] = amount
	}
	return argsKV
}

func (r *budgetRepository) CreateBudget(ctx context.Context, b entity.Budget) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := limitArgs(b.Limits)
	argsKV["user_id"] = b.UserID

	query, args, err := sqlx.Named(queryCreateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBudget")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    b.UserID,
			}).Warn("Budget already exists for user")
			return 0, budget.ErrBudgetAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating budget")
		return 0, err
	}

	return id, nil
}

func (r *budgetRepository) GetBudgetByID(ctx context.Context, id int64) (entity.Budget, error) {
	return r.getBudget(ctx, queryGetBudgetByID, map[string]interface{}{"id": id})
}

func (r *budgetRepository) GetBudgetByUserID(ctx context.Context, userID int64) (entity.Budget, error) {
	return r.getBudget(ctx, queryGetBudgetByUserID, map[string]interface{}{"user_id": userID})
}

func (r *budgetRepository) getBudget(ctx context.Context, namedQuery string, argsKV map[string]interface{}) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row BudgetDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudget named query preparation err")
		return entity.Budget{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"filter":     argsKV,
			}).Warn("GetBudget no rows found")
			return entity.Budget{}, budget.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudget execution err")
		return entity.Budget{}, err
	}

	return entity.Budget{
		ID:     row.ID.Int64,
		UserID: row.UserID.Int64,
		Limits: row.BudgetLimits,
	}, nil
}

func (r *budgetRepository) UpdateBudget(ctx context.Context, b entity.Budget) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := limitArgs(b.Limits)
	argsKV["id"] = b.ID

	query, args, err := sqlx.Named(queryUpdateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateBudget")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating budget")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return budget.ErrBudgetNotFound
	}

	return nil
}

func (r *budgetRepository) DeleteBudget(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteBudget, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteBudget")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting budget")
		return err
	}

	return nil
}
