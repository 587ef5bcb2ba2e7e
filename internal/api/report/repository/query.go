package reportRepository

const (
	queryCategoryTotalsByUserID = `
		SELECT p.category AS category, SUM(p.price) AS total
		FROM purchases p
		JOIN transactions t ON t.id = p.transaction_id
		WHERE t.user_id = :user_id
		GROUP BY p.category
		ORDER BY total ASC, category ASC
	`

	queryCategoryTotalsByUserIDInRange = `
		SELECT p.category AS category, SUM(p.price) AS total
		FROM purchases p
		JOIN transactions t ON t.id = p.transaction_id
		WHERE t.user_id = :user_id AND t.date BETWEEN :date_from AND :date_to
		GROUP BY p.category
		ORDER BY total ASC, category ASC
	`

	queryCategoryTotalsByTransactionID = `
		SELECT category, SUM(price) AS total
		FROM purchases
		WHERE transaction_id = :transaction_id
		GROUP BY category
		ORDER BY category ASC
	`

	queryBudgetLimitsByUserID = `
		SELECT
			groceries, clothing_and_accessories, electronics, home_and_garden,
			health_and_beauty, entertainment, travel, automotive, services,
			gifts_and_special_occasions, education, fitness_and_sports, pets,
			office_supplies, financial_services, other
		FROM budgets
		WHERE user_id = :user_id
	`
)
