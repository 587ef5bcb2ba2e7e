package user

type UserRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

type CreateUserResponse struct {
	UserID int64 `json:"user_id"`
}

type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
