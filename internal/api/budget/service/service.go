package budgetService

import (
	"ReceiptTracker/internal/api/budget"
	budgetRepository "ReceiptTracker/internal/api/budget/repository"
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/pkg/redis"
	"context"

	"github.com/sirupsen/logrus"
)

type IBudgetService interface {
	CreateBudget(ctx context.Context, userID int64, limits entity.BudgetLimits) (int64, error)
	GetBudget(ctx context.Context, userID int64) (budget.BudgetResponse, error)
	UpdateBudget(ctx context.Context, userID, budgetID int64, limits entity.BudgetLimits) (budget.BudgetResponse, error)
	DeleteBudget(ctx context.Context, userID, budgetID int64) error
}

type budgetService struct {
	log              *logrus.Logger
	budgetRepository budgetRepository.Repository
	cache            redis.IRedis
}

func NewBudgetService(log *logrus.Logger, br budgetRepository.Repository, cache redis.IRedis) IBudgetService {
	return &budgetService{
		log:              log,
		budgetRepository: br,
		cache:            cache,
	}
}
