package transactionService

import (
	"ReceiptTracker/internal/api/report"
	"ReceiptTracker/internal/api/transaction"
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/internal/ownership"
	contextPkg "ReceiptTracker/pkg/context"
	"ReceiptTracker/pkg/response"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *transactionService) CreateTransaction(ctx context.Context, userID int64, req transaction.TransactionRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	date, err := entity.ParseDate(req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid transaction date")
		return 0, transaction.ErrInvalidDate
	}

	repo, err := s.transactionRepository.NewClient(ctx, true)
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

	id, err := repo.Transaction.CreateTransaction(ctx, entity.Transaction{
		UserID:      userID,
		Merchant:    req.Merchant,
		Description: req.Description,
		Date:        date,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return 0, response.Or(err, transaction.ErrCreateTransaction)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction creation")
		return 0, response.Or(err, transaction.ErrCreateTransaction)
	}

	report.InvalidateUser(ctx, s.cache, s.log, requestID, userID)

	return id, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID int64, transactionID *int64, page entity.Page) ([]transaction.TransactionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !page.IsValid() {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"page":       page.Number,
			"page_size":  page.Size,
		}).Warn("Invalid pagination")
		return nil, transaction.ErrInvalidPage
	}

	repo, err := s.transactionRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}
	defer func() { _ = repo.Rollback() }()

	chain := ownership.ForUser(userID)
	if transactionID != nil {
		chain = ownership.ForTransaction(userID, *transactionID)
	}
	if err := repo.Ownership.Validate(ctx, chain); err != nil {
		return nil, err
	}

	var transactions []entity.Transaction
	if transactionID != nil {
		// The filtered listing holds at most one row, so only the first
		// page has anything on it.
		if page.Offset() == 0 {
			t, err := repo.Transaction.GetTransactionByID(ctx, *transactionID)
			if err != nil {
				return nil, err
			}
			transactions = []entity.Transaction{t}
		}
	} else {
		transactions, err = repo.Transaction.GetTransactionsByUserID(ctx, userID, page)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
				"error":      err.Error(),
			}).Error("Failed to list transactions")
			return nil, err
		}
	}

	if err := repo.Commit(); err != nil {
		return nil, err
	}

	res := make([]transaction.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		res = append(res, makeTransactionResponse(t))
	}
	return res, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, userID, transactionID int64) (transaction.TransactionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return transaction.TransactionResponse{}, err
	}
	defer func() { _ = repo.Rollback() }()

	if err := repo.Ownership.Validate(ctx, ownership.ForTransaction(userID, transactionID)); err != nil {
		return transaction.TransactionResponse{}, err
	}

	t, err := repo.Transaction.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		return transaction.TransactionResponse{}, err
	}

	return makeTransactionResponse(t), nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID int64, req transaction.TransactionRequest) (transaction.TransactionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	date, err := entity.ParseDate(req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid transaction date")
		return transaction.TransactionResponse{}, transaction.ErrInvalidDate
	}

	repo, err := s.transactionRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return transaction.TransactionResponse{}, err
	}
	defer func() { _ = repo.Rollback() }()

	if err := repo.Ownership.Validate(ctx, ownership.ForTransaction(userID, transactionID)); err != nil {
		return transaction.TransactionResponse{}, err
	}

	err = repo.Transaction.UpdateTransaction(ctx, entity.Transaction{
		ID:          transactionID,
		UserID:      userID,
		Merchant:    req.Merchant,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": transactionID,
			"error":          err.Error(),
		}).Error("Failed to update transaction")
		return transaction.TransactionResponse{}, response.Or(err, transaction.ErrUpdateTransaction)
	}

	updated, err := repo.Transaction.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction update")
		return transaction.TransactionResponse{}, response.Or(err, transaction.ErrUpdateTransaction)
	}

	return makeTransactionResponse(updated), nil
}

// DeleteTransaction succeeds when the transaction is already gone. A
// transaction that exists must belong to the user.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer func() { _ = repo.Rollback() }()

	chain := ownership.ForTransaction(userID, transactionID)
	snapshot, err := repo.Ownership.Lookup(ctx, chain)
	if err != nil {
		return err
	}
	if !snapshot.TransactionExists() {
		return nil
	}
	if err := snapshot.Resolve(chain).Err(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"user_id":        userID,
			"transaction_id": transactionID,
		}).Warn("Refusing to delete transaction of another user")
		return err
	}

	if err := repo.Transaction.DeleteTransaction(ctx, transactionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": transactionID,
			"error":          err.Error(),
		}).Error("Failed to delete transaction")
		return response.Or(err, transaction.ErrDeleteTransaction)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction deletion")
		return response.Or(err, transaction.ErrDeleteTransaction)
	}

	report.InvalidateUser(ctx, s.cache, s.log, requestID, userID)

	return nil
}
