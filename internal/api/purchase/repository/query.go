package purchaseRepository

const (
	queryCreatePurchase = `
		INSERT INTO purchases (transaction_id, item, price, category, quantity, warranty_date, return_date, created_at)
		VALUES (:transaction_id, :item, :price, :category, :quantity, :warranty_date, :return_date, :created_at)
		RETURNING id
	`

	queryGetPurchaseByID = `
		SELECT id, transaction_id, item, price, category, quantity, warranty_date, return_date, created_at
		FROM purchases
		WHERE id = :id
	`

	// %s is an ORDER BY body produced by entity.PurchaseSort.OrderBy.
	queryGetPurchasesByTransactionID = `
		SELECT id, transaction_id, item, price, category, quantity, warranty_date, return_date, created_at
		FROM purchases
		WHERE transaction_id = :transaction_id
		ORDER BY %s
	`

	queryUpdatePurchase = `
		UPDATE purchases
		SET item = :item, price = :price, category = :category, quantity = :quantity,
			warranty_date = :warranty_date, return_date = :return_date
		WHERE id = :id
	`

	queryDeletePurchase = `
		DELETE FROM purchases
		WHERE id = :id
	`
)
