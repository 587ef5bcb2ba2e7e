package purchaseService

import (
	"ReceiptTracker/internal/api/purchase"
	"ReceiptTracker/internal/entity"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var maxPrice = decimal.NewFromInt(math.MaxInt64)

// maxPriceDigits is the number of integer digits in math.MaxInt64.
const maxPriceDigits = 19

// parsePrice accepts positive whole amounts that fit a BIGINT column. The
// digit count is checked first so a huge exponent is never rescaled.
func parsePrice(price decimal.Decimal) (int64, error) {
	if !price.IsPositive() {
		return 0, purchase.ErrInvalidPrice
	}
	if price.Exponent() > maxPriceDigits || price.NumDigits()+int(price.Exponent()) > maxPriceDigits {
		return 0, purchase.ErrInvalidPrice
	}
	if !price.IsInteger() || price.GreaterThan(maxPrice) {
		return 0, purchase.ErrInvalidPrice
	}
	return price.IntPart(), nil
}

func makePurchase(transactionID int64, req purchase.PurchaseRequest) (entity.Purchase, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return entity.Purchase{}, err
	}

	if req.Quantity < entity.MinQuantity {
		return entity.Purchase{}, purchase.ErrInvalidQuantity
	}

	if !entity.IsValidCategory(req.Category) {
		return entity.Purchase{}, purchase.ErrInvalidCategory
	}

	warranty, err := entity.ParseDate(req.WarrantyDate)
	if err != nil {
		return entity.Purchase{}, purchase.ErrInvalidDate
	}
	returnDate, err := entity.ParseDate(req.ReturnDate)
	if err != nil {
		return entity.Purchase{}, purchase.ErrInvalidDate
	}

	return entity.Purchase{
		TransactionID: transactionID,
		Item:          req.Item,
		Price:         price,
		Category:      entity.Category(req.Category),
		Quantity:      req.Quantity,
		WarrantyDate:  warranty,
		ReturnDate:    returnDate,
	}, nil
}

func validateSort(sort entity.PurchaseSort) error {
	byOnly := entity.PurchaseSort{By: sort.By, Order: entity.SortAsc}
	if !byOnly.IsValid() {
		return purchase.ErrInvalidSortBy
	}
	if !sort.IsValid() {
		return purchase.ErrInvalidSortOrder
	}
	return nil
}

func makePurchaseResponse(p entity.Purchase) purchase.PurchaseResponse {
	return purchase.PurchaseResponse{
		ID:            p.ID,
		TransactionID: p.TransactionID,
		Item:          p.Item,
		Price:         p.Price,
		Category:      p.Category.String(),
		Quantity:      p.Quantity,
		WarrantyDate:  entity.FormatDate(p.WarrantyDate),
		ReturnDate:    entity.FormatDate(p.ReturnDate),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
