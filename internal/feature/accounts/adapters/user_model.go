package adapters

import "nexuscare_backend/internal/feature/accounts/domain/entity"

// userDoc is the storage representation of a user in the key-value backend.
// The domain entity hides password and security answer from JSON responses,
// so the stored document needs its own tags to keep every field.
type userDoc struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	SecurityQuestion string `json:"securityQuestion"`
	SecurityAnswer   string `json:"securityAnswer"`
}

func toUserDoc(u *entity.User) userDoc {
	return userDoc{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		Password:         u.Password,
		Role:             u.Role,
		SecurityQuestion: u.SecurityQuestion,
		SecurityAnswer:   u.SecurityAnswer,
	}
}

func (d userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:               d.ID,
		Username:         d.Username,
		Email:            d.Email,
		Password:         d.Password,
		Role:             d.Role,
		SecurityQuestion: d.SecurityQuestion,
		SecurityAnswer:   d.SecurityAnswer,
	}
}
