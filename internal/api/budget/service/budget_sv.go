package budgetService

import (
	"ReceiptTracker/internal/api/budget"
	"ReceiptTracker/internal/api/report"
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/internal/ownership"
	contextPkg "ReceiptTracker/pkg/context"
	"ReceiptTracker/pkg/response"
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

func makeBudgetResponse(b entity.Budget) budget.BudgetResponse {
	return budget.BudgetResponse{BudgetID: b.ID, BudgetLimits: b.Limits}
}

// CreateBudget stores the single budget a user may own.
func (s *budgetService) CreateBudget(ctx context.Context, userID int64, limits entity.BudgetLimits) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !limits.IsValid() {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("Negative budget amount")
		return 0, budget.ErrInvalidBudget
	}

	repo, err := s.budgetRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return 0, err
	}
	defer func() { _ = repo.Rollback() }()

	if err := repo.Ownership.Validate(ctx, ownership.ForUser(userID)); err != nil {
		return 0, err
	}

	_, err = repo.Budget.GetBudgetByUserID(ctx, userID)
	switch {
	case err == nil:
		return 0, budget.ErrBudgetAlreadyExists
	case !errors.Is(err, budget.ErrBudgetNotFound):
		return 0, err
	}

	id, err := repo.Budget.CreateBudget(ctx, entity.Budget{UserID: userID, Limits: limits})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to create budget")
		return 0, response.Or(err, budget.ErrCreateBudget)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit budget creation")
		return 0, response.Or(err, budget.ErrCreateBudget)
	}

	report.InvalidateUser(ctx, s.cache, s.log, requestID, userID)

	return id, nil
}

func (s *budgetService) GetBudget(ctx context.Context, userID int64) (budget.BudgetResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return budget.BudgetResponse{}, err
	}
	defer func() { _ = repo.Rollback() }()

	if err := repo.Ownership.Validate(ctx, ownership.ForUser(userID)); err != nil {
		return budget.BudgetResponse{}, err
	}

	b, err := repo.Budget.GetBudgetByUserID(ctx, userID)
	if err != nil {
		return budget.BudgetResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		return budget.BudgetResponse{}, err
	}

	return makeBudgetResponse(b), nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID int64, limits entity.BudgetLimits) (budget.BudgetResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !limits.IsValid() {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("Negative budget amount")
		return budget.BudgetResponse{}, budget.ErrInvalidBudget
	}

	repo, err := s.budgetRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return budget.BudgetResponse{}, err
	}
	defer func() { _ = repo.Rollback() }()

	if err := repo.Ownership.Validate(ctx, ownership.ForUser(userID)); err != nil {
		return budget.BudgetResponse{}, err
	}

	existing, err := repo.Budget.GetBudgetByID(ctx, budgetID)
	if err != nil {
		return budget.BudgetResponse{}, err
	}
	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"budget_id":  budgetID,
		}).Warn("Budget belongs to another user")
		return budget.BudgetResponse{}, budget.ErrBudgetNotOwned
	}

	updated := entity.Budget{ID: budgetID, UserID: userID, Limits: limits}
	if err := repo.Budget.UpdateBudget(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"budget_id":  budgetID,
			"error":      err.Error(),
		}).Error("Failed to update budget")
		return budget.BudgetResponse{}, response.Or(err, budget.ErrUpdateBudget)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit budget update")
		return budget.BudgetResponse{}, response.Or(err, budget.ErrUpdateBudget)
	}

	report.InvalidateUser(ctx, s.cache, s.log, requestID, userID)

	return makeBudgetResponse(updated), nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer func() { _ = repo.Rollback() }()

	existing, err := repo.Budget.GetBudgetByID(ctx, budgetID)
	if errors.Is(err, budget.ErrBudgetNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return budget.ErrBudgetNotOwned
	}

	if err := repo.Budget.DeleteBudget(ctx, budgetID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"budget_id":  budgetID,
			"error":      err.Error(),
		}).Error("Failed to delete budget")
		return response.Or(err, budget.ErrDeleteBudget)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit budget deletion")
		return response.Or(err, budget.ErrDeleteBudget)
	}

	report.InvalidateUser(ctx, s.cache, s.log, requestID, userID)

	return nil
}
