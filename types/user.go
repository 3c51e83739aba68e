package types

import "time"

// User statuses. An account is active unless an admin blocks it.
const (
	UserStatusActive  = 0
	UserStatusBlocked = 1
)

// User represents a registered account in the system.
// It contains identity, contact, and login metadata.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Name is the user's display or full name.
	Name string `json:"name" db:"name"`

	// Contact is the user's contact number.
	Contact string `json:"contact" db:"contact"`

	// Email is the user's email address. It is unique across accounts
	// and acts as the login name.
	Email string `json:"email" db:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in rendered views.
	PasswordHash string `json:"-" db:"password_hash"`

	// Gender is whatever the user entered on the registration form.
	Gender string `json:"gender" db:"gender"`

	// DateOfBirth is the birth date supplied at registration.
	DateOfBirth string `json:"date_of_birth" db:"date_of_birth"`

	// Status indicates whether the account is active (0) or blocked (1).
	Status int `json:"status" db:"status"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Blocked reports whether the account has been blocked by an admin.
func (u User) Blocked() bool {
	return u.Status == UserStatusBlocked
}
