package budget

import "ReceiptTracker/internal/entity"

// BudgetRequest carries one nullable monthly cap per category.
type BudgetRequest struct {
	Groceries                *int64 `json:"groceries" validate:"omitempty,gte=0"`
	ClothingAndAccessories   *int64 `json:"clothing_and_accessories" validate:"omitempty,gte=0"`
	Electronics              *int64 `json:"electronics" validate:"omitempty,gte=0"`
	HomeAndGarden            *int64 `json:"home_and_garden" validate:"omitempty,gte=0"`
	HealthAndBeauty          *int64 `json:"health_and_beauty" validate:"omitempty,gte=0"`
	Entertainment            *int64 `json:"entertainment" validate:"omitempty,gte=0"`
	Travel                   *int64 `json:"travel" validate:"omitempty,gte=0"`
	Automotive               *int64 `json:"automotive" validate:"omitempty,gte=0"`
	Services                 *int64 `json:"services" validate:"omitempty,gte=0"`
	GiftsAndSpecialOccasions *int64 `json:"gifts_and_special_occasions" validate:"omitempty,gte=0"`
	Education                *int64 `json:"education" validate:"omitempty,gte=0"`
	FitnessAndSports         *int64 `json:"fitness_and_sports" validate:"omitempty,gte=0"`
	Pets                     *int64 `json:"pets" validate:"omitempty,gte=0"`
	OfficeSupplies           *int64 `json:"office_supplies" validate:"omitempty,gte=0"`
	FinancialServices        *int64 `json:"financial_services" validate:"omitempty,gte=0"`
	Other                    *int64 `json:"other" validate:"omitempty,gte=0"`
}

func (r BudgetRequest) Limits() entity.BudgetLimits {
	return entity.BudgetLimits(r)
}

type CreateBudgetResponse struct {
	BudgetID int64 `json:"budget_id"`
}

type BudgetResponse struct {
	BudgetID int64 `json:"budget_id"`
	entity.BudgetLimits
}
