package entity

import "time"

// MinQuantity is the smallest quantity a purchase may carry.
const MinQuantity = 2

type Purchase struct {
	ID            int64
	TransactionID int64
	Item          string
	Price         int64
	Category      Category
	Quantity      int
	WarrantyDate  time.Time
	ReturnDate    time.Time
	CreatedAt     time.Time
}

type PurchaseSortKey string

const (
	PurchaseSortDate         PurchaseSortKey = "date"
	PurchaseSortPrice        PurchaseSortKey = "price"
	PurchaseSortCategory     PurchaseSortKey = "category"
	PurchaseSortWarrantyDate PurchaseSortKey = "warranty_date"
	PurchaseSortReturnDate   PurchaseSortKey = "return_date"
	PurchaseSortQuantity     PurchaseSortKey = "quantity"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// purchaseSortColumns whitelists ORDER BY columns; the query text is built
// from these values only.
var purchaseSortColumns = map[PurchaseSortKey]string{
	PurchaseSortDate:         "created_at",
	PurchaseSortPrice:        "price",
	PurchaseSortCategory:     "category",
	PurchaseSortWarrantyDate: "warranty_date",
	PurchaseSortReturnDate:   "return_date",
	PurchaseSortQuantity:     "quantity",
}

type PurchaseSort struct {
	By    PurchaseSortKey
	Order SortOrder
}

func (s PurchaseSort) IsValid() bool {
	if _, ok := purchaseSortColumns[s.By]; !ok {
		return false
	}
	return s.Order == SortAsc || s.Order == SortDesc
}

// OrderBy returns the ORDER BY clause body for a valid sort.
func (s PurchaseSort) OrderBy() string {
	direction := "ASC"
	if s.Order == SortDesc {
		direction = "DESC"
	}
	return purchaseSortColumns[s.By] + " " + direction + ", id " + direction
}
