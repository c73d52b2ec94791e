package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/gudang/pkg/database"
	"github.com/ghuser/gudang/pkg/events"
	inventorydomain "github.com/ghuser/gudang/services/inventory/domain"
	"github.com/ghuser/gudang/services/inventory/domain/models"
	"github.com/ghuser/gudang/services/inventory/domain/repositories"
)

// ProductRepository implements repositories.InventoryStore against PostgreSQL.
type ProductRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProductRepository returns a ProductRepository backed by the given
// connection pool and event bus. The bus publishes a MovementRecordedEvent
// inside the same transaction as the initial movement (outbox pattern).
func NewProductRepository(db *database.Database, bus *events.EventBus) *ProductRepository {
	return &ProductRepository{db: db, bus: bus}
}

// Insert persists a new product and its initial IN movement in one
// transaction. A constraint violation (negative stock) maps to
// ErrInvalidProduct.
func (r *ProductRepository) Insert(ctx context.Context, p *models.Product, initial *models.Movement) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO products (id, name, category, stock, image_url, entered_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, p.Name, p.Category, p.Stock, p.ImageURL, p.EnteredAt,
		); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23514" {
				return fmt.Errorf("%w: %s", inventorydomain.ErrInvalidProduct, pgErr.ConstraintName)
			}
			return fmt.Errorf("insert product: %w", err)
		}

		if err := appendMovementTx(ctx, tx, initial); err != nil {
			return err
		}

		if r.bus != nil {
			if err := publishMovementRecorded(tx, r.bus, initial); err != nil {
				return fmt.Errorf("publish movement recorded: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a product by ID. Returns ErrProductNotFound if not found.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, name, category, stock, image_url, entered_at
		FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, inventorydomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

// Find retrieves a page of products ordered by entry date descending plus the
// total count. Search filters by case-insensitive name substring.
func (r *ProductRepository) Find(ctx context.Context, opts repositories.QueryOpts) ([]*models.Product, int, error) {
	pattern := likePattern(opts.Search)

	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, name, category, stock, image_url, entered_at
		FROM products
		WHERE ($1 = '' OR name ILIKE $2)
		ORDER BY entered_at DESC, id
		LIMIT $3 OFFSET $4`,
		opts.Search, pattern, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate products: %w", err)
	}

	var total int
	if err := r.db.DB().QueryRowContext(ctx, `
		SELECT count(*) FROM products WHERE ($1 = '' OR name ILIKE $2)`,
		opts.Search, pattern,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	return products, total, nil
}

// FindAllOrderedByName returns every product, alphabetical, for the stock report.
func (r *ProductRepository) FindAllOrderedByName(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, name, category, stock, image_url, entered_at
		FROM products ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// Update full-replaces the stored fields of an existing product.
// Returns ErrProductNotFound when no row matched.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE products
		SET name = $2, category = $3, stock = $4, image_url = $5, entered_at = $6
		WHERE id = $1`,
		p.ID, p.Name, p.Category, p.Stock, p.ImageURL, p.EnteredAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return fmt.Errorf("%w: %s", inventorydomain.ErrInvalidProduct, pgErr.ConstraintName)
		}
		return fmt.Errorf("update product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return inventorydomain.ErrProductNotFound
	}
	return nil
}

// Delete removes a product row. Movement rows reference it with ON DELETE SET
// NULL, so history survives. Returns ErrProductNotFound when no row matched.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return inventorydomain.ErrProductNotFound
	}
	return nil
}

// TotalStock sums the stock column across all products.
func (r *ProductRepository) TotalStock(ctx context.Context) (int, error) {
	var total int
	if err := r.db.DB().QueryRowContext(ctx,
		`SELECT coalesce(sum(stock), 0) FROM products`,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum stock: %w", err)
	}
	return total, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*models.Product, error) {
	var p models.Product
	var imageURL sql.NullString
	if err := s.Scan(&p.ID, &p.Name, &p.Category, &p.Stock, &imageURL, &p.EnteredAt); err != nil {
		return nil, err
	}
	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}
	return &p, nil
}

func likePattern(search string) string {
	return "%" + search + "%"
}
