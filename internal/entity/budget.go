package entity

// BudgetLimits holds the monthly cap per category. A nil field means the
// category is not budgeted.
type BudgetLimits struct {
	Groceries                *int64 `json:"groceries" db:"groceries"`
	ClothingAndAccessories   *int64 `json:"clothing_and_accessories" db:"clothing_and_accessories"`
	Electronics              *int64 `json:"electronics" db:"electronics"`
	HomeAndGarden            *int64 `json:"home_and_garden" db:"home_and_garden"`
	HealthAndBeauty          *int64 `json:"health_and_beauty" db:"health_and_beauty"`
	Entertainment            *int64 `json:"entertainment" db:"entertainment"`
	Travel                   *int64 `json:"travel" db:"travel"`
	Automotive               *int64 `json:"automotive" db:"automotive"`
	Services                 *int64 `json:"services" db:"services"`
	GiftsAndSpecialOccasions *int64 `json:"gifts_and_special_occasions" db:"gifts_and_special_occasions"`
	Education                *int64 `json:"education" db:"education"`
	FitnessAndSports         *int64 `json:"fitness_and_sports" db:"fitness_and_sports"`
	Pets                     *int64 `json:"pets" db:"pets"`
	OfficeSupplies           *int64 `json:"office_supplies" db:"office_supplies"`
	FinancialServices        *int64 `json:"financial_services" db:"financial_services"`
	Other                    *int64 `json:"other" db:"other"`
}

type Budget struct {
	ID     int64
	UserID int64
	Limits BudgetLimits
}

func (l *BudgetLimits) field(c Category) **int64 {
	switch c {
	case CategoryGroceries:
		return &l.Groceries
	case CategoryClothingAndAccessories:
		return &l.ClothingAndAccessories
	case CategoryElectronics:
		return &l.Electronics
	case CategoryHomeAndGarden:
		return &l.HomeAndGarden
	case CategoryHealthAndBeauty:
		return &l.HealthAndBeauty
	case CategoryEntertainment:
		return &l.Entertainment
	case CategoryTravel:
		return &l.Travel
	case CategoryAutomotive:
		return &l.Automotive
	case CategoryServices:
		return &l.Services
	case CategoryGiftsAndSpecialOccasions:
		return &l.GiftsAndSpecialOccasions
	case CategoryEducation:
		return &l.Education
	case CategoryFitnessAndSports:
		return &l.FitnessAndSports
	case CategoryPets:
		return &l.Pets
	case CategoryOfficeSupplies:
		return &l.OfficeSupplies
	case CategoryFinancialServices:
		return &l.FinancialServices
	case CategoryOther:
		return &l.Other
	}
	return nil
}

// Get returns the cap for c, nil when c is not budgeted.
func (l BudgetLimits) Get(c Category) *int64 {
	f := l.field(c)
	if f == nil {
		return nil
	}
	return *f
}

func (l *BudgetLimits) Set(c Category, amount *int64) {
	if f := l.field(c); f != nil {
		*f = amount
	}
}

// IsValid reports whether every budgeted amount is non-negative.
func (l BudgetLimits) IsValid() bool {
	for _, c := range Categories {
		if v := l.Get(c); v != nil && *v < 0 {
			return false
		}
	}
	return true
}

// ByKey maps each category key to its cap, keeping nils.
func (l BudgetLimits) ByKey() map[string]*int64 {
	m := make(map[string]*int64, len(Categories))
	for _, c := range Categories {
		m[c.Key()] = l.Get(c)
	}
	return m
}
