package user

import (
	"ReceiptTracker/pkg/response"
	"net/http"
)

var (
	ErrUserNotFound = response.NewError(http.StatusNotFound, "User not found")
	ErrCreateUser   = response.NewError(http.StatusInternalServerError, "failed to create user")
	ErrUpdateUser   = response.NewError(http.StatusInternalServerError, "failed to update user")
	ErrDeleteUser   = response.NewError(http.StatusInternalServerError, "failed to delete user")
)
