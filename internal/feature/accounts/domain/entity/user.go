// Package entity defines the domain entities for the accounts feature.
package entity

// Role values recognised by the frontend. Role is stored as a free-form
// uppercased string, so values outside this set are accepted as-is.
const (
	RolePatient = "PATIENT"
	RoleDoctor  = "DOCTOR"
	RoleAdmin   = "ADMIN"
)

// User represents a registered account.
//
// The password is stored and compared verbatim. This mirrors the legacy
// deployment and is a documented weakness, not a baseline to build on.
type User struct {
	// ID is the generated identifier ("USR-" prefix).
	ID string `gorm:"primaryKey;size:16" json:"id"`

	// Username is the display name supplied at signup.
	Username string `gorm:"size:255;not null" json:"username"`

	// Email is the natural key, normalized to lowercase.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the plaintext credential.
	Password string `gorm:"size:255;not null" json:"-"`

	// Role defaults to PATIENT when absent from the signup request.
	Role string `gorm:"size:32;not null" json:"role"`

	SecurityQuestion string `gorm:"size:255" json:"securityQuestion"`

	// SecurityAnswer is lowercased and trimmed before storage so recovery
	// checks are case-insensitive.
	SecurityAnswer string `gorm:"size:255" json:"-"`
}
