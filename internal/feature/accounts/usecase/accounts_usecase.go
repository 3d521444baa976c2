package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nexuscare_backend/internal/feature/accounts/domain/entity"
	"nexuscare_backend/internal/platform/ident"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailTaken when a user with
	// the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by normalized email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// Notifier is the best-effort notification sink. Implementations must absorb
// delivery failures; Notify never reports one.
type Notifier interface {
	Notify(ctx context.Context, subject, body string)
}

// SignupInput carries the fields accepted by the signup endpoint.
type SignupInput struct {
	Name             string
	Email            string
	Password         string
	Role             string
	SecurityQuestion string
	SecurityAnswer   string
}

// accountsUsecase implements signup and login.
type accountsUsecase struct {
	users    UserRepository
	notifier Notifier
}

// NewAccountsUsecase creates a new accountsUsecase. notifier may be nil, in
// which case signup events are not published.
func NewAccountsUsecase(users UserRepository, notifier Notifier) *accountsUsecase {
	return &accountsUsecase{users: users, notifier: notifier}
}

// Signup registers a new user and returns the persisted record.
// Email is lowercased, the role defaults to PATIENT, and the security answer
// is lowercased and trimmed so recovery checks are case-insensitive.
func (u *accountsUsecase) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	role := strings.ToUpper(in.Role)
	if role == "" {
		role = entity.RolePatient
	}

	user := &entity.User{
		ID:               ident.New(ident.PrefixUser),
		Username:         in.Name,
		Email:            strings.ToLower(in.Email),
		Password:         in.Password,
		Role:             role,
		SecurityQuestion: in.SecurityQuestion,
		SecurityAnswer:   strings.ToLower(strings.TrimSpace(in.SecurityAnswer)),
	}

	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if u.notifier != nil {
		u.notifier.Notify(ctx, "New account registered",
			fmt.Sprintf("%s (%s) signed up as %s.", user.Username, user.Email, user.Role))
	}

	return user, nil
}

// Login authenticates a user by email and plaintext password.
// Unknown email and wrong password both yield ErrInvalidCredentials so the
// response does not leak which case applied.
func (u *accountsUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
