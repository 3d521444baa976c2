package dto

import "nexuscare_backend/internal/feature/accounts/domain/entity"

// UserView is the public projection of a user returned by signup and login.
// Password and security answer are never exposed.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// NewUserView builds a UserView from a user entity.
func NewUserView(u *entity.User) UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// AuthOK is the success envelope for signup and login.
type AuthOK struct {
	Success bool     `json:"success"`
	User    UserView `json:"user"`
}

// AuthFail is the failure envelope for signup and login.
type AuthFail struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
