package reportService

import (
	"ReceiptTracker/internal/api/report"
	reportRepository "ReceiptTracker/internal/api/report/repository"
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/internal/ownership"
	contextPkg "ReceiptTracker/pkg/context"
	"ReceiptTracker/pkg/response"
	"context"

	"github.com/sirupsen/logrus"
)

// GetCategorizedSpend sums purchase prices per category across every
// transaction of the user, smallest total first.
func (s *reportService) GetCategorizedSpend(ctx context.Context, userID int64) ([]report.CategoryTotalResponse, error) {
	var res []report.CategoryTotalResponse

	err := s.cached(ctx, userID, report.KindCategories, &res, func() error {
		repo, err := s.newClient(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = repo.Rollback() }()

		if err := repo.Ownership.Validate(ctx, ownership.ForUser(userID)); err != nil {
			return err
		}

		totals, err := repo.Report.GetCategoryTotalsByUserID(ctx, userID)
		if err != nil {
			return response.Or(err, report.ErrReport)
		}

		res = make([]report.CategoryTotalResponse, 0, len(totals))
		for _, t := range totals {
			res = append(res, report.CategoryTotalResponse{Category: t.Category.String(), Total: t.Total})
		}
		return repo.Commit()
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *reportService) GetTransactionCategoryTotals(ctx context.Context, userID, transactionID int64) (report.CategoryTotalsResponse, error) {
	var res report.CategoryTotalsResponse

	err := s.cached(ctx, userID, report.TransactionKind(transactionID), &res, func() error {
		repo, err := s.newClient(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = repo.Rollback() }()

		if err := repo.Ownership.Validate(ctx, ownership.ForTransaction(userID, transactionID)); err != nil {
			return err
		}

		totals, err := repo.Report.GetCategoryTotalsByTransactionID(ctx, transactionID)
		if err != nil {
			return response.Or(err, report.ErrReport)
		}

		res = make(report.CategoryTotalsResponse, len(totals))
		for _, t := range totals {
			res[t.Category.String()] = t.Total
		}
		return repo.Commit()
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// CompareBudget reports, for each budgeted category, what was spent against
// the cap. A non-zero rng limits the spend to transactions dated within it.
func (s *reportService) CompareBudget(ctx context.Context, userID int64, rng entity.DateRange) (report.BudgetComparisonResponse, error) {
	var res report.BudgetComparisonResponse

	err := s.cached(ctx, userID, report.CompareKind(rng), &res, func() error {
		repo, err := s.newClient(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = repo.Rollback() }()

		if err := repo.Ownership.Validate(ctx, ownership.ForUser(userID)); err != nil {
			return err
		}

		limits, err := repo.Report.GetBudgetLimitsByUserID(ctx, userID)
		if err != nil {
			return response.Or(err, report.ErrReport)
		}

		var totals []entity.CategoryTotal
		if rng.IsZero() {
			totals, err = repo.Report.GetCategoryTotalsByUserID(ctx, userID)
		} else {
			totals, err = repo.Report.GetCategoryTotalsByUserIDInRange(ctx, userID, rng.From, rng.To)
		}
		if err != nil {
			return response.Or(err, report.ErrReport)
		}

		actual := make(map[entity.Category]int64, len(totals))
		for _, t := range totals {
			actual[t.Category] = t.Total
		}

		res = entity.CompareBudget(limits, actual)
		return repo.Commit()
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *reportService) newClient(ctx context.Context) (reportRepository.Client, error) {
	repo, err := s.reportRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return repo, report.ErrReport
	}
	return repo, nil
}
