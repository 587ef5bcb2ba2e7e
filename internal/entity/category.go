package entity

// Category is one of the fixed spending classifications shared by
// purchases and budgets. The value is the display name stored on purchases.
type Category string

const (
	CategoryGroceries                Category = "Groceries"
	CategoryClothingAndAccessories   Category = "Clothing and Accessories"
	CategoryElectronics              Category = "Electronics"
	CategoryHomeAndGarden            Category = "Home and Garden"
	CategoryHealthAndBeauty          Category = "Health and Beauty"
	CategoryEntertainment            Category = "Entertainment"
	CategoryTravel                   Category = "Travel"
	CategoryAutomotive               Category = "Automotive"
	CategoryServices                 Category = "Services"
	CategoryGiftsAndSpecialOccasions Category = "Gifts and Special Occasions"
	CategoryEducation                Category = "Education"
	CategoryFitnessAndSports         Category = "Fitness and Sports"
	CategoryPets                     Category = "Pets"
	CategoryOfficeSupplies           Category = "Office Supplies"
	CategoryFinancialServices        Category = "Financial Services"
	CategoryOther                    Category = "Other"
)

// Categories lists every category in budget column order.
var Categories = []Category{
	CategoryGroceries,
	CategoryClothingAndAccessories,
	CategoryElectronics,
	CategoryHomeAndGarden,
	CategoryHealthAndBeauty,
	CategoryEntertainment,
	CategoryTravel,
	CategoryAutomotive,
	CategoryServices,
	CategoryGiftsAndSpecialOccasions,
	CategoryEducation,
	CategoryFitnessAndSports,
	CategoryPets,
	CategoryOfficeSupplies,
	CategoryFinancialServices,
	CategoryOther,
}

var categoryKeys = map[Category]string{
	CategoryGroceries:                "groceries",
	CategoryClothingAndAccessories:   "clothing_and_accessories",
	CategoryElectronics:              "electronics",
	CategoryHomeAndGarden:            "home_and_garden",
	CategoryHealthAndBeauty:          "health_and_beauty",
	CategoryEntertainment:            "entertainment",
	CategoryTravel:                   "travel",
	CategoryAutomotive:               "automotive",
	CategoryServices:                 "services",
	CategoryGiftsAndSpecialOccasions: "gifts_and_special_occasions",
	CategoryEducation:                "education",
	CategoryFitnessAndSports:         "fitness_and_sports",
	CategoryPets:                     "pets",
	CategoryOfficeSupplies:           "office_supplies",
	CategoryFinancialServices:        "financial_services",
	CategoryOther:                    "other",
}

var categoriesByKey = func() map[string]Category {
	m := make(map[string]Category, len(categoryKeys))
	for c, k := range categoryKeys {
		m[k] = c
	}
	return m
}()

// Key is the snake_case name used for budget columns and JSON fields.
func (c Category) Key() string {
	return categoryKeys[c]
}

func (c Category) String() string {
	return string(c)
}

func IsValidCategory(category string) bool {
	_, ok := categoryKeys[Category(category)]
	return ok
}

func CategoryFromKey(key string) (Category, bool) {
	c, ok := categoriesByKey[key]
	return c, ok
}
