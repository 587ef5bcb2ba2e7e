package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (user_id, merchant, description, date, created_at)
		VALUES (:user_id, :merchant, :description, :date, :created_at)
		RETURNING id
	`

	queryGetTransactionByID = `
		SELECT id, user_id, merchant, description, date, created_at
		FROM transactions
		WHERE id = :id
	`

	queryGetTransactionsByUserID = `
		SELECT id, user_id, merchant, description, date, created_at
		FROM transactions
		WHERE user_id = :user_id
		ORDER BY created_at DESC, id DESC
		LIMIT :limit OFFSET :offset
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET merchant = :merchant, description = :description, date = :date
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`
)
