package entity

import (
	"math"
	"time"
)

type Transaction struct {
	ID          int64
	UserID      int64
	Merchant    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// Page is a 1-based page of a listing.
type Page struct {
	Number int
	Size   int
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	MaxPage         = math.MaxInt32
)

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) IsValid() bool {
	return p.Number >= 1 && p.Number <= MaxPage && p.Size >= 1 && p.Size <= MaxPageSize
}
