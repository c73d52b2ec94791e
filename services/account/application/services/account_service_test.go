package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/gudang/pkg/config"
	"github.com/ghuser/gudang/pkg/logger"
	accountdomain "github.com/ghuser/gudang/services/account/domain"
	"github.com/ghuser/gudang/services/account/domain/models"
)

// fakeUserStore is an in-memory UserStore keyed by username.
type fakeUserStore struct {
	byUsername map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byUsername: make(map[string]*models.User)}
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.User) error {
	if _, ok := f.byUsername[u.Username]; ok {
		return accountdomain.ErrUsernameTaken
	}
	cp := *u
	f.byUsername[u.Username] = &cp
	return nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, accountdomain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, accountdomain.ErrUserNotFound
}

func newTestService() *AccountService {
	return NewAccountService(newFakeUserStore(), logger.New(&config.Config{LogLevel: "error"}))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hashed password, never the plaintext", func(t *testing.T) {
		svc := newTestService()
		u, err := svc.Register(ctx, "budi", "rahasia-gudang")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.PasswordHash == "rahasia-gudang" || u.PasswordHash == "" {
			t.Fatal("expected bcrypt hash, not plaintext")
		}
	})

	t.Run("duplicate username returns ErrUsernameTaken", func(t *testing.T) {
		svc := newTestService()
		if _, err := svc.Register(ctx, "budi", "rahasia-gudang"); err != nil {
			t.Fatalf("first register: %v", err)
		}
		_, err := svc.Register(ctx, "budi", "sandi-lain-lagi")
		if !errors.Is(err, accountdomain.ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return the user", func(t *testing.T) {
		svc := newTestService()
		registered, err := svc.Register(ctx, "budi", "rahasia-gudang")
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		u, err := svc.Login(ctx, "budi", "rahasia-gudang")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != registered.ID {
			t.Fatalf("expected user %v, got %v", registered.ID, u.ID)
		}
	})

	t.Run("wrong password returns ErrInvalidCredentials", func(t *testing.T) {
		svc := newTestService()
		if _, err := svc.Register(ctx, "budi", "rahasia-gudang"); err != nil {
			t.Fatalf("register: %v", err)
		}
		_, err := svc.Login(ctx, "budi", "salah-total")
		if !errors.Is(err, accountdomain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown username returns ErrInvalidCredentials, not ErrUserNotFound", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.Login(ctx, "siapa", "apapun-sandinya")
		if !errors.Is(err, accountdomain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if errors.Is(err, accountdomain.ErrUserNotFound) {
			t.Fatal("login must not reveal whether the account exists")
		}
	})
}
