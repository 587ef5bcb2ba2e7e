package budget

import (
	"ReceiptTracker/pkg/response"
	"net/http"
)

var (
	ErrInvalidBudget       = response.NewError(http.StatusBadRequest, "Invalid budget")
	ErrBudgetNotFound      = response.NewError(http.StatusNotFound, "Budget not found")
	ErrBudgetAlreadyExists = response.NewError(http.StatusBadRequest, "User already has a budget")
	ErrBudgetNotOwned      = response.NewError(http.StatusBadRequest, "Budget does not belong to user")
	ErrInvalidID           = response.NewError(http.StatusBadRequest, "Invalid budget id")
	ErrCreateBudget        = response.NewError(http.StatusInternalServerError, "failed to create budget")
	ErrUpdateBudget        = response.NewError(http.StatusInternalServerError, "failed to update budget")
	ErrDeleteBudget        = response.NewError(http.StatusInternalServerError, "failed to delete budget")
)
