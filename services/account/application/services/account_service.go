package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ghuser/gudang/pkg/logger"
	accountdomain "github.com/ghuser/gudang/services/account/domain"
	"github.com/ghuser/gudang/services/account/domain/models"
	"github.com/ghuser/gudang/services/account/domain/repositories"
)

// AccountService registers accounts and verifies credentials. Password
// hashing uses bcrypt at the default cost.
type AccountService struct {
	users repositories.UserStore
	log   logger.Logger
	now   func() time.Time
}

// NewAccountService wires an AccountService.
func NewAccountService(users repositories.UserStore, log logger.Logger) *AccountService {
	return &AccountService{users: users, log: log, now: time.Now}
}

// Register creates an account with a hashed password. A duplicate username
// surfaces as ErrUsernameTaken.
func (s *AccountService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := models.NewUser(username, string(hash), s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// Login verifies a username/password pair. Both an unknown username and a
// wrong password collapse into ErrInvalidCredentials so the response does not
// reveal which accounts exist.
func (s *AccountService) Login(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, accountdomain.ErrUserNotFound) {
			return nil, accountdomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, accountdomain.ErrInvalidCredentials
	}
	return u, nil
}

// GetByID resolves a session's user ID to its account.
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
