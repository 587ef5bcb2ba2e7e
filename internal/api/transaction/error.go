package transaction

import (
	"ReceiptTracker/pkg/response"
	"net/http"
)

var (
	ErrTransactionNotFound = response.NewError(http.StatusNotFound, "Transaction not found")
	ErrTransactionNotOwned = response.NewError(http.StatusBadRequest, "Transaction does not belong to user")
	ErrInvalidDate         = response.NewError(http.StatusBadRequest, "Invalid date")
	ErrInvalidPage         = response.NewError(http.StatusBadRequest, "Invalid page or page_size")
	ErrInvalidID           = response.NewError(http.StatusBadRequest, "Invalid transaction id")
	ErrCreateTransaction   = response.NewError(http.StatusInternalServerError, "failed to create transaction")
	ErrUpdateTransaction   = response.NewError(http.StatusInternalServerError, "failed to update transaction")
	ErrDeleteTransaction   = response.NewError(http.StatusInternalServerError, "failed to delete transaction")
)
