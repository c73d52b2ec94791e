package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/gudang/services/account/domain/models"
)

// UserStore persists accounts.
type UserStore interface {
	// Insert stores a new user. A duplicate username returns
	// domain.ErrUsernameTaken.
	Insert(ctx context.Context, u *models.User) error

	// GetByUsername looks a user up for login. A missing user returns
	// domain.ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID resolves the session's user ID back to an account.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
