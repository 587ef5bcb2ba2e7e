package reportService

import (
	"ReceiptTracker/internal/api/report"
	reportRepository "ReceiptTracker/internal/api/report/repository"
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/pkg/redis"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultCacheTTL applies when no TTL is configured.
const DefaultCacheTTL = time.Minute

type IReportService interface {
	GetCategorizedSpend(ctx context.Context, userID int64) ([]report.CategoryTotalResponse, error)
	GetTransactionCategoryTotals(ctx context.Context, userID, transactionID int64) (report.CategoryTotalsResponse, error)
	CompareBudget(ctx context.Context, userID int64, rng entity.DateRange) (report.BudgetComparisonResponse, error)
}

type reportService struct {
	log              *logrus.Logger
	reportRepository reportRepository.Repository
	cache            redis.IRedis
	ttl              time.Duration
}

func NewReportService(log *logrus.Logger, rr reportRepository.Repository, cache redis.IRedis, ttl time.Duration) IReportService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &reportService{
		log:              log,
		reportRepository: rr,
		cache:            cache,
		ttl:              ttl,
	}
}
