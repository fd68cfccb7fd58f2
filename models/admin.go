package models

import "time"

// Admin represents an administrator account used for authentication.
// Accounts are created only by the out-of-band seeding step (cmd/seed);
// there is no self-registration and accounts are never deleted in normal
// operation.
type Admin struct {
	// ID is the internal unique identifier of the administrator.
	ID string `json:"id"`

	// Email is the unique login identifier. Stored and compared
	// case-insensitively.
	Email string `json:"email"`

	// Name is the display name of the administrator.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the administrator's password.
	// Never exposed via JSON and never logged.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}
