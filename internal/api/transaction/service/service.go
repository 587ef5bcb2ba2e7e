package transactionService

import (
	"ReceiptTracker/internal/api/transaction"
	transactionRepository "ReceiptTracker/internal/api/transaction/repository"
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/pkg/redis"
	"context"

	"github.com/sirupsen/logrus"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, userID int64, req transaction.TransactionRequest) (int64, error)
	ListTransactions(ctx context.Context, userID int64, transactionID *int64, page entity.Page) ([]transaction.TransactionResponse, error)
	GetTransaction(ctx context.Context, userID, transactionID int64) (transaction.TransactionResponse, error)
	UpdateTransaction(ctx context.Context, userID, transactionID int64, req transaction.TransactionRequest) (transaction.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, userID, transactionID int64) error
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	cache                 redis.IRedis
}

func NewTransactionService(log *logrus.Logger, tr transactionRepository.Repository, cache redis.IRedis) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		cache:                 cache,
	}
}
