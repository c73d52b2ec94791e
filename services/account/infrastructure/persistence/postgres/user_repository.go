package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/gudang/pkg/database"
	accountdomain "github.com/ghuser/gudang/services/account/domain"
	"github.com/ghuser/gudang/services/account/domain/models"
)

const pgUniqueViolation = "23505"

// UserRepository persists users in the users table.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the shared pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

const insertUser = `
INSERT INTO users (id, username, password_hash, created_at)
VALUES ($1, $2, $3, $4)`

func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	_, err := r.db.DB().ExecContext(ctx, insertUser,
		u.ID, u.Username, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return accountdomain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

const selectUser = `
SELECT id, username, password_hash, created_at
FROM users`

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.DB().QueryRowContext(ctx, selectUser+` WHERE username = $1`, username)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.DB().QueryRowContext(ctx, selectUser+` WHERE id = $1`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, accountdomain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
