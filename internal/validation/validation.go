// Package validation builds the request validator with the domain tags
// used by the DTOs: calendar_date and category.
package validation

import (
	"ReceiptTracker/internal/entity"

	"github.com/go-playground/validator/v10"
)

func New() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
		return entity.IsValidDate(fl.Field().String())
	})
	_ = validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return entity.IsValidCategory(fl.Field().String())
	})

	return validate
}
