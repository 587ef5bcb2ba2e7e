package transaction

type TransactionRequest struct {
	Merchant    string `json:"merchant" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
	Date        string `json:"date" validate:"required,calendar_date"`
}

type CreateTransactionResponse struct {
	TransactionID int64 `json:"transaction_id"`
}

type TransactionResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Merchant    string `json:"merchant"`
	Description string `json:"description"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}
