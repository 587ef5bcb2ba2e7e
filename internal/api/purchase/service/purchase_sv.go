package purchaseService

import (
	"ReceiptTracker/internal/api/purchase"
	"ReceiptTracker/internal/api/report"
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/internal/ownership"
	contextPkg "ReceiptTracker/pkg/context"
	"ReceiptTracker/pkg/response"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *purchaseService) CreatePurchase(ctx context.Context, userID, transactionID int64, req purchase.PurchaseRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	p, err := makePurchase(transactionID, req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid purchase")
		return 0, err
	}
	p.CreatedAt = time.Now()

	repo, err := s.purchaseRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return 0, err
	}
	defer func() { _ = repo.Rollback() }()

	if err := repo.Ownership.Validate(ctx, ownership.ForTransaction(userID, transactionID)); err != nil {
		return 0, err
	}

	id, err := repo.Purchase.CreatePurchase(ctx, p)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": transactionID,
			"error":          err.Error(),
		}).Error("Failed to create purchase")
		return 0, response.Or(err, purchase.ErrCreatePurchase)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit purchase creation")
		return 0, response.Or(err, purchase.ErrCreatePurchase)
	}

	report.InvalidateUser(ctx, s.cache, s.log, requestID, userID)

	return id, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, userID, transactionID int64, purchaseID *int64, sort entity.PurchaseSort) ([]purchase.PurchaseResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := validateSort(sort); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"sort_by":    sort.By,
			"sort_order": sort.Order,
		}).Warn("Invalid purchase sort")
		return nil, err
	}

	repo, err := s.purchaseRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}
	defer func() { _ = repo.Rollback() }()

	chain := ownership.ForTransaction(userID, transactionID)
	if purchaseID != nil {
		chain = ownership.ForPurchase(userID, transactionID, *purchaseID)
	}
	if err := repo.Ownership.Validate(ctx, chain); err != nil {
		return nil, err
	}

	purchases, err := repo.Purchase.GetPurchasesByTransactionID(ctx, transactionID, sort)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": transactionID,
			"error":          err.Error(),
		}).Error("Failed to list purchases")
		return nil, err
	}

	if err := repo.Commit(); err != nil {
		return nil, err
	}

	res := make([]purchase.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		if purchaseID != nil && p.ID != *purchaseID {
			continue
		}
		res = append(res, makePurchaseResponse(p))
	}
	return res, nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, userID, transactionID, purchaseID int64) (purchase.PurchaseResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.purchaseRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return purchase.PurchaseResponse{}, err
	}
	defer func() { _ = repo.Rollback() }()

	if err := repo.Ownership.Validate(ctx, ownership.ForPurchase(userID, transactionID, purchaseID)); err != nil {
		return purchase.PurchaseResponse{}, err
	}

	p, err := repo.Purchase.GetPurchaseByID(ctx, purchaseID)
	if err != nil {
		return purchase.PurchaseResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		return purchase.PurchaseResponse{}, err
	}

	return makePurchaseResponse(p), nil
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, userID, transactionID, purchaseID int64, req purchase.PurchaseRequest) (purchase.PurchaseResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	p, err := makePurchase(transactionID, req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid purchase")
		return purchase.PurchaseResponse{}, err
	}
	p.ID = purchaseID

	repo, err := s.purchaseRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return purchase.PurchaseResponse{}, err
	}
	defer func() { _ = repo.Rollback() }()

	if err := repo.Ownership.Validate(ctx, ownership.ForPurchase(userID, transactionID, purchaseID)); err != nil {
		return purchase.PurchaseResponse{}, err
	}

	if err := repo.Purchase.UpdatePurchase(ctx, p); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"purchase_id": purchaseID,
			"error":       err.Error(),
		}).Error("Failed to update purchase")
		return purchase.PurchaseResponse{}, response.Or(err, purchase.ErrUpdatePurchase)
	}

	updated, err := repo.Purchase.GetPurchaseByID(ctx, purchaseID)
	if err != nil {
		return purchase.PurchaseResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit purchase update")
		return purchase.PurchaseResponse{}, response.Or(err, purchase.ErrUpdatePurchase)
	}

	report.InvalidateUser(ctx, s.cache, s.log, requestID, userID)

	return makePurchaseResponse(updated), nil
}

// DeletePurchase succeeds when the purchase is already gone; otherwise the
// whole user, transaction, purchase chain must hold.
func (s *purchaseService) DeletePurchase(ctx context.Context, userID, transactionID, purchaseID int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.purchaseRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer func() { _ = repo.Rollback() }()

	chain := ownership.ForPurchase(userID, transactionID, purchaseID)
	snapshot, err := repo.Ownership.Lookup(ctx, chain)
	if err != nil {
		return err
	}
	if !snapshot.PurchaseExists() {
		return nil
	}
	if err := snapshot.Resolve(chain).Err(); err != nil {
		return err
	}

	if err := repo.Purchase.DeletePurchase(ctx, purchaseID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"purchase_id": purchaseID,
			"error":       err.Error(),
		}).Error("Failed to delete purchase")
		return response.Or(err, purchase.ErrDeletePurchase)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit purchase deletion")
		return response.Or(err, purchase.ErrDeletePurchase)
	}

	report.InvalidateUser(ctx, s.cache, s.log, requestID, userID)

	return nil
}
