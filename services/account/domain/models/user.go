package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a warehouse staff account. Authentication is username/password with
// a bcrypt hash; the hash never leaves this package's consumers unredacted.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser constructs a user with a fresh ID. The password must already be
// hashed by the application layer.
func NewUser(username, passwordHash string, now time.Time) (*User, error) {
	u := &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate enforces the account invariants.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return errors.New("username must not be empty")
	}
	if len(u.Username) > 64 {
		return errors.New("username must be at most 64 characters")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash must not be empty")
	}
	return nil
}
