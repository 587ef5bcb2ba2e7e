package purchase

import (
	"ReceiptTracker/pkg/response"
	"net/http"
)

var (
	ErrPurchaseNotFound = response.NewError(http.StatusNotFound, "Purchase not found")
	ErrPurchaseNotOwned = response.NewError(http.StatusBadRequest, "Purchase does not belong to transaction")
	ErrInvalidDate      = response.NewError(http.StatusBadRequest, "Invalid date")
	ErrInvalidPrice     = response.NewError(http.StatusBadRequest, "Invalid price")
	ErrInvalidQuantity  = response.NewError(http.StatusBadRequest, "Invalid quantity")
	ErrInvalidCategory  = response.NewError(http.StatusBadRequest, "Invalid category")
	ErrInvalidSortBy    = response.NewError(http.StatusBadRequest, "Invalid sort_by")
	ErrInvalidSortOrder = response.NewError(http.StatusBadRequest, "Invalid sort_order")
	ErrInvalidID        = response.NewError(http.StatusBadRequest, "Invalid purchase id")
	ErrCreatePurchase   = response.NewError(http.StatusInternalServerError, "failed to create purchase")
	ErrUpdatePurchase   = response.NewError(http.StatusInternalServerError, "failed to update purchase")
	ErrDeletePurchase   = response.NewError(http.StatusInternalServerError, "failed to delete purchase")
)
