package purchaseService

import (
	"ReceiptTracker/internal/api/purchase"
	purchaseRepository "ReceiptTracker/internal/api/purchase/repository"
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/pkg/redis"
	"context"

	"github.com/sirupsen/logrus"
)

type IPurchaseService interface {
	CreatePurchase(ctx context.Context, userID, transactionID int64, req purchase.PurchaseRequest) (int64, error)
	ListPurchases(ctx context.Context, userID, transactionID int64, purchaseID *int64, sort entity.PurchaseSort) ([]purchase.PurchaseResponse, error)
	GetPurchase(ctx context.Context, userID, transactionID, purchaseID int64) (purchase.PurchaseResponse, error)
	UpdatePurchase(ctx context.Context, userID, transactionID, purchaseID int64, req purchase.PurchaseRequest) (purchase.PurchaseResponse, error)
	DeletePurchase(ctx context.Context, userID, transactionID, purchaseID int64) error
}

type purchaseService struct {
	log                *logrus.Logger
	purchaseRepository purchaseRepository.Repository
	cache              redis.IRedis
}

func NewPurchaseService(log *logrus.Logger, pr purchaseRepository.Repository, cache redis.IRedis) IPurchaseService {
	return &purchaseService{
		log:                log,
		purchaseRepository: pr,
		cache:              cache,
	}
}
