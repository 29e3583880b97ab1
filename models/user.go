package models

import "time"

// User represents an account entity used for authentication and authorization.
// PasswordHash is a bcrypt digest and must never leave the server.
type User struct {
	// UserID is the unique identifier of the user (UUID).
	UserID string `json:"id"`

	// Username is the unique public name of the user. It is shown as the
	// owner of locations and as the author of comments.
	Username string `json:"username"`

	// Email is the unique address used to log in.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserRef is a weak reference to a [User] embedded into locations and
// comments. Username is resolved on read and is empty when the referenced
// user no longer exists.
type UserRef struct {
	UserID   string `json:"id"`
	Username string `json:"username,omitempty"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
