package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique user login identifier.
	// Typically used during authentication.
	Username string `json:"username"`

	// Email is the unique email address of the user.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value (bcrypt output), never plaintext.
	// It is used only for authentication.
	PasswordHash string `json:"-"`

	// AccessToken is the opaque bearer credential assigned exactly once at
	// account creation. It is compared verbatim against the Authorization
	// header of incoming requests; there is no expiry or rotation.
	AccessToken string `json:"-"`

	// TaskID is an optional reference to a task owned by the user.
	// Nil when no task has been attached. There is no creation path for this
	// reference inside the API; it exists for the task application on top.
	TaskID *int64 `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
