package report

import (
	"ReceiptTracker/pkg/response"
	"net/http"
)

var (
	ErrBudgetNotFound   = response.NewError(http.StatusNotFound, "Budget not found")
	ErrInvalidID        = response.NewError(http.StatusBadRequest, "Invalid id")
	ErrInvalidDateRange = response.NewError(http.StatusBadRequest, "date_from and date_to must both be YYYY-MM-DD with date_from not after date_to")
	ErrReport           = response.NewError(http.StatusInternalServerError, "failed to build report")
)
