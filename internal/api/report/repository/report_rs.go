package reportRepository

import (
	"ReceiptTracker/internal/api/report"
	"ReceiptTracker/internal/entity"
	contextPkg "ReceiptTracker/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CategoryTotalDB struct {
	Category sql.NullString `db:"category"`
	Total    sql.NullInt64  `db:"total"`
}

func (r *reportRepository) GetCategoryTotalsByUserID(ctx context.Context, userID int64) ([]entity.CategoryTotal, error) {
	return r.selectTotals(ctx, queryCategoryTotalsByUserID, map[string]interface{}{"user_id": userID})
}

// GetCategoryTotalsByUserIDInRange only counts transactions dated within
// [from, to], both ends inclusive.
func (r *reportRepository) GetCategoryTotalsByUserIDInRange(ctx context.Context, userID int64, from, to time.Time) ([]entity.CategoryTotal, error) {
	return r.selectTotals(ctx, queryCategoryTotalsByUserIDInRange, map[string]interface{}{
		"user_id":   userID,
		"date_from": entity.FormatDate(from),
		"date_to":   entity.FormatDate(to),
	})
}

func (r *reportRepository) GetCategoryTotalsByTransactionID(ctx context.Context, transactionID int64) ([]entity.CategoryTotal, error) {
	return r.selectTotals(ctx, queryCategoryTotalsByTransactionID, map[string]interface{}{"transaction_id": transactionID})
}

func (r *reportRepository) selectTotals(ctx context.Context, namedQuery string, argsKV map[string]interface{}) ([]entity.CategoryTotal, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []CategoryTotalDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Category totals named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Category totals execution err")
		return nil, err
	}

	totals := make([]entity.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, entity.CategoryTotal{
			Category: entity.Category(row.Category.String),
			Total:    row.Total.Int64,
		})
	}
	return totals, nil
}

func (r *reportRepository) GetBudgetLimitsByUserID(ctx context.Context, userID int64) (entity.BudgetLimits, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var limits entity.BudgetLimits

	query, args, err := sqlx.Named(queryBudgetLimitsByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetLimitsByUserID named query preparation err")
		return entity.BudgetLimits{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&limits); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
			}).Warn("GetBudgetLimitsByUserID no rows found")
			return entity.BudgetLimits{}, report.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetLimitsByUserID execution err")
		return entity.BudgetLimits{}, err
	}

	return limits, nil
}
