package repositories

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/ghuser/gudang/services/inventory/domain/models"
)

// QueryOpts contains pagination and search parameters for list queries.
type QueryOpts struct {
	Limit  int    // Maximum number of records to return
	Offset int    // Number of records to skip
	Search string // Case-insensitive substring match on the name, empty = no filter
}

// InventoryStore is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
type InventoryStore interface {
	// Insert persists a new product together with its initial IN movement
	// in one transaction. Either both rows land or neither does.
	Insert(ctx context.Context, p *models.Product, initial *models.Movement) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// Find retrieves a page of products ordered by entry date descending.
	// Returns the page and the total count ignoring pagination.
	Find(ctx context.Context, opts QueryOpts) ([]*models.Product, int, error)

	// FindAllOrderedByName returns every product, alphabetical, for reports.
	FindAllOrderedByName(ctx context.Context) ([]*models.Product, error)

	// Update full-replaces the stored fields of an existing product.
	Update(ctx context.Context, p *models.Product) error

	// Delete removes a product row. The movement log keeps its history.
	Delete(ctx context.Context, id uuid.UUID) error

	// TotalStock sums the stock column across all products.
	TotalStock(ctx context.Context) (int, error)
}

// MovementLog is the append-only persistence interface for stock movements.
// No operation ever updates or deletes a movement row.
type MovementLog interface {
	Append(ctx context.Context, m *models.Movement) error

	// Find retrieves a page of history entries ordered by occurrence time
	// descending, each with its product snapshot resolved (live join when
	// the product still exists, cached fields when it is gone). Search
	// matches the cached product name.
	Find(ctx context.Context, opts QueryOpts) ([]*models.HistoryEntry, int, error)

	// FindAllForExport returns the full history, newest first, for the CSV report.
	FindAllForExport(ctx context.Context) ([]*models.HistoryEntry, error)

	Count(ctx context.Context) (int, error)
}

// ImageStore uploads image bytes and returns a public URL. Implemented by
// pkg/storage against MinIO; the recorder only sees this interface.
type ImageStore interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error)
}
