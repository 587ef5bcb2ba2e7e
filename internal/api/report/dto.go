package report

import "ReceiptTracker/internal/entity"

type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// CategoryTotalsResponse maps a category display name to its total.
type CategoryTotalsResponse map[string]int64

// BudgetComparisonResponse is keyed by category key.
type BudgetComparisonResponse map[string]entity.BudgetComparison
