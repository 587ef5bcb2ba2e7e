package entity

type CategoryTotal struct {
	Category Category `json:"category"`
	Total    int64    `json:"total"`
}

// BudgetComparison pairs actual spending with the budgeted cap.
type BudgetComparison struct {
	Actual int64 `json:"actual"`
	Budget int64 `json:"budget"`
}

// CompareBudget returns one entry per budgeted category, keyed by category
// key. Categories without spending report an actual of zero.
func CompareBudget(limits BudgetLimits, actual map[Category]int64) map[string]BudgetComparison {
	result := make(map[string]BudgetComparison)
	for _, c := range Categories {
		limit := limits.Get(c)
		if limit == nil {
			continue
		}
		result[c.Key()] = BudgetComparison{
			Actual: actual[c],
			Budget: *limit,
		}
	}
	return result
}
