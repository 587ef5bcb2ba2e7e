package purchaseRepository

import (
	"ReceiptTracker/internal/api/purchase"
	"ReceiptTracker/internal/entity"
	contextPkg "ReceiptTracker/pkg/context"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PurchaseDB struct {
	ID            sql.NullInt64  `db:"id"`
	TransactionID sql.NullInt64  `db:"transaction_id"`
	Item          sql.NullString `db:"item"`
	Price         sql.NullInt64  `db:"price"`
	Category      sql.NullString `db:"category"`
	Quantity      sql.NullInt64  `db:"quantity"`
	WarrantyDate  sql.NullTime   `db:"warranty_date"`
	ReturnDate    sql.NullTime   `db:"return_date"`
	CreatedAt     sql.NullTime   `db:"created_at"`
}

func (r *purchaseRepository) CreatePurchase(ctx context.Context, p entity.Purchase) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	argsKV := map[string]interface{}{
		"transaction_id": p.TransactionID,
		"item":           p.Item,
		"price":          p.Price,
		"category":       p.Category.String(),
		"quantity":       p.Quantity,
		"warranty_date":  entity.FormatDate(p.WarrantyDate),
		"return_date":    entity.FormatDate(p.ReturnDate),
		"created_at":     createdAt,
	}

	query, args, err := sqlx.Named(queryCreatePurchase, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreatePurchase")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating purchase")
		return 0, err
	}

	return id, nil
}

func (r *purchaseRepository) GetPurchaseByID(ctx context.Context, id int64) (entity.Purchase, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row PurchaseDB

	query, args, err := sqlx.Named(queryGetPurchaseByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPurchaseByID named query preparation err")
		return entity.Purchase{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"purchase_id": id,
			}).Warn("GetPurchaseByID no rows found")
			return entity.Purchase{}, purchase.ErrPurchaseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPurchaseByID execution err")
		return entity.Purchase{}, err
	}

	return r.makePurchase(row), nil
}

func (r *purchaseRepository) GetPurchasesByTransactionID(ctx context.Context, transactionID int64, sort entity.PurchaseSort) ([]entity.Purchase, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []PurchaseDB

	if !sort.IsValid() {
		return nil, purchase.ErrInvalidSortBy
	}

	query, args, err := sqlx.Named(
		fmt.Sprintf(queryGetPurchasesByTransactionID, sort.OrderBy()),
		map[string]interface{}{"transaction_id": transactionID},
	)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPurchasesByTransactionID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPurchasesByTransactionID execution err")
		return nil, err
	}

	purchases := make([]entity.Purchase, 0, len(rows))
	for _, row := range rows {
		purchases = append(purchases, r.makePurchase(row))
	}

	return purchases, nil
}

func (r *purchaseRepository) UpdatePurchase(ctx context.Context, p entity.Purchase) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":            p.ID,
		"item":          p.Item,
		"price":         p.Price,
		"category":      p.Category.String(),
		"quantity":      p.Quantity,
		"warranty_date": entity.FormatDate(p.WarrantyDate),
		"return_date":   entity.FormatDate(p.ReturnDate),
	}

	query, args, err := sqlx.Named(queryUpdatePurchase, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdatePurchase")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating purchase")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return purchase.ErrPurchaseNotFound
	}

	return nil
}

func (r *purchaseRepository) DeletePurchase(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeletePurchase, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeletePurchase")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting purchase")
		return err
	}

	return nil
}

func (r *purchaseRepository) makePurchase(row PurchaseDB) entity.Purchase {
	return entity.Purchase{
		ID:            row.ID.Int64,
		TransactionID: row.TransactionID.Int64,
		Item:          row.Item.String,
		Price:         row.Price.Int64,
		Category:      entity.Category(row.Category.String),
		Quantity:      int(row.Quantity.Int64),
		WarrantyDate:  row.WarrantyDate.Time,
		ReturnDate:    row.ReturnDate.Time,
		CreatedAt:     row.CreatedAt.Time,
	}
}
