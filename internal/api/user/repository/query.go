package userRepository

const (
	queryCreateUser = `
		INSERT INTO users (name, email, created_at)
		VALUES (:name, :email, :created_at)
		RETURNING id
	`

	queryGetUserByID = `
		SELECT id, name, email, created_at
		FROM users
		WHERE id = :id
	`

	queryUpdateUser = `
		UPDATE users
		SET name = :name, email = :email
		WHERE id = :id
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE id = :id
	`
)
