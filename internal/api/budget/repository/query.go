package budgetRepository

const (
	queryCreateBudget = `
		INSERT INTO budgets (
			user_id, groceries, clothing_and_accessories, electronics, home_and_garden,
			health_and_beauty, entertainment, travel, automotive, services,
			gifts_and_special_occasions, education, fitness_and_sports, pets,
			office_supplies, financial_services, other
		)
		VALUES (
			:user_id, :groceries, :clothing_and_accessories, :electronics, :home_and_garden,
			:health_and_beauty, :entertainment, :travel, :automotive, :services,
			:gifts_and_special_occasions, :education, :fitness_and_sports, :pets,
			:office_supplies, :financial_services, :other
		)
		RETURNING id
	`

	queryGetBudgetByID = `
		SELECT
			id, user_id, groceries, clothing_and_accessories, electronics, home_and_garden,
			health_and_beauty, entertainment, travel, automotive, services,
			gifts_and_special_occasions, education, fitness_and_sports, pets,
			office_supplies, financial_services, other
		FROM budgets
		WHERE id = :id
	`

	queryGetBudgetByUserID = `
		SELECT
			id, user_id, groceries, clothing_and_accessories, electronics, home_and_garden,
			health_and_beauty, entertainment, travel, automotive, services,
			gifts_and_special_occasions, education, fitness_and_sports, pets,
			office_supplies, financial_services, other
		FROM budgets
		WHERE user_id = :user_id
	`

	queryUpdateBudget = `
		UPDATE budgets
		SET groceries = :groceries,
			clothing_and_accessories = :clothing_and_accessories,
			electronics = :electronics,
			home_and_garden = :home_and_garden,
			health_and_beauty = :health_and_beauty,
			entertainment = :entertainment,
			travel = :travel,
			automotive = :automotive,
			services = :services,
			gifts_and_special_occasions = :gifts_and_special_occasions,
			education = :education,
			fitness_and_sports = :fitness_and_sports,
			pets = :pets,
			office_supplies = :office_supplies,
			financial_services = :financial_services,
			other = :other
		WHERE id = :id
	`

	queryDeleteBudget = `
		DELETE FROM budgets
		WHERE id = :id
	`
)
