package transactionService

import (
	"ReceiptTracker/internal/api/transaction"
	"ReceiptTracker/internal/entity"
	"time"
)

func makeTransactionResponse(t entity.Transaction) transaction.TransactionResponse {
	return transaction.TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Merchant:    t.Merchant,
		Description: t.Description,
		Date:        entity.FormatDate(t.Date),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
