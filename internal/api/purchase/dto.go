package purchase

import "github.com/shopspring/decimal"

type PurchaseRequest struct {
	Item         string          `json:"item" validate:"required,max=255"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category" validate:"required,category"`
	Quantity     int             `json:"quantity" validate:"gt=1"`
	WarrantyDate string          `json:"warranty_date" validate:"required,calendar_date"`
	ReturnDate   string          `json:"return_date" validate:"required,calendar_date"`
}

type CreatePurchaseResponse struct {
	PurchaseID int64 `json:"purchase_id"`
}

type PurchaseResponse struct {
	ID            int64  `json:"id"`
	TransactionID int64  `json:"transaction_id"`
	Item          string `json:"item"`
	Price         int64  `json:"price"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
	WarrantyDate  string `json:"warranty_date"`
	ReturnDate    string `json:"return_date"`
	CreatedAt     string `json:"created_at"`
}
