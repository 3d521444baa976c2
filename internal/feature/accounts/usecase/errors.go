// Package usecase implements the business logic for the accounts feature.
package usecase

import "errors"

var (
	// ErrEmailTaken is returned when attempting to create a user with an email
	// that is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound is returned when a user cannot be found by email.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on login failure. It deliberately does
	// not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
