package ownership

const (
	queryLookupChain = `
		SELECT
			EXISTS (SELECT 1 FROM users WHERE id = :user_id) AS user_exists,
			(SELECT user_id FROM transactions WHERE id = :transaction_id) AS transaction_owner,
			(SELECT transaction_id FROM purchases WHERE id = :purchase_id) AS purchase_owner
	`
)
