package models

import "time"

// User represents a registered blog account used for authentication and
// post ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUID string).
	// It is generated by the application at registration time.
	UserID string `json:"id"`

	// Username is the unique account name chosen at registration.
	// Case-sensitive, alphanumeric, 3-20 characters.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// PublicUser is the externally visible projection of a [User].
// It is the only user representation ever written to an HTTP response.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Credentials carries the username/password pair received in register and
// login request bodies. The password is plaintext in transit only and is
// hashed before it ever reaches the persistence layer.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Serialize returns the public projection of the user with the password
// hash stripped.
func (u User) Serialize() PublicUser {
	return PublicUser{
		ID:       u.UserID,
		Username: u.Username,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
