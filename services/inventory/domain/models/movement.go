package models

import (
	"time"

	"github.com/google/uuid"
)

// MovementType classifies a stock movement.
type MovementType string

const (
	MovementIn         MovementType = "IN"
	MovementOut        MovementType = "OUT" // reserved: no operation produces OUT yet
	MovementAdjustment MovementType = "ADJUSTMENT"
	MovementDelete     MovementType = "DELETE"
)

// Human-readable status labels carried on movement rows. The Indonesian
// labels match what the warehouse staff see in the history view and CSV
// exports.
const (
	StatusInitialStock  = "Initial Stock"
	StatusStockIncrease = "Penambahan Stok"
	StatusStockDecrease = "Pengurangan Stok"
	StatusItemDeleted   = "Barang Dihapus"
)

// Movement is an append-only audit row recording one stock change.
//
// ProductID is nullable: DELETE movements carry nil since the referenced
// product row is about to disappear. Name, category, and image are
// denormalized copies captured at write time so history stays readable after
// the product is gone. Quantity is always the absolute magnitude of the
// change, never the resulting total.
type Movement struct {
	ID         uuid.UUID
	ProductID  *uuid.UUID
	Name       string
	Category   string
	ImageURL   *string
	Type       MovementType
	Quantity   int
	OccurredAt time.Time
	Status     string
}

// NewInitialStockMovement records the IN movement for a freshly created
// product. Quantity equals the initial stock.
func NewInitialStockMovement(p *Product, now time.Time) *Movement {
	id := p.ID
	return &Movement{
		ID:         uuid.New(),
		ProductID:  &id,
		Name:       p.Name,
		Category:   p.Category,
		ImageURL:   p.ImageURL,
		Type:       MovementIn,
		Quantity:   p.Stock,
		OccurredAt: now,
		Status:     StatusInitialStock,
	}
}

// NewAdjustmentMovement derives the ADJUSTMENT movement for an edit that
// changed stock from oldStock to p.Stock. Cached fields reflect the
// post-edit product. Returns (nil, false) when the stock did not change —
// a no-op edit produces no movement at all.
func NewAdjustmentMovement(p *Product, oldStock int, now time.Time) (*Movement, bool) {
	diff := p.Stock - oldStock
	if diff == 0 {
		return nil, false
	}

	status := StatusStockIncrease
	quantity := diff
	if diff < 0 {
		status = StatusStockDecrease
		quantity = -diff
	}

	id := p.ID
	return &Movement{
		ID:         uuid.New(),
		ProductID:  &id,
		Name:       p.Name,
		Category:   p.Category,
		ImageURL:   p.ImageURL,
		Type:       MovementAdjustment,
		Quantity:   quantity,
		OccurredAt: now,
		Status:     status,
	}, true
}

// NewDeletionMovement records the DELETE movement written before a product
// row is removed. ProductID is nil: the row will be gone, and the cached
// fields are the only surviving record of what was deleted. Quantity is the
// stock held at deletion time.
func NewDeletionMovement(p *Product, now time.Time) *Movement {
	return &Movement{
		ID:         uuid.New(),
		ProductID:  nil,
		Name:       p.Name,
		Category:   p.Category,
		ImageURL:   p.ImageURL,
		Type:       MovementDelete,
		Quantity:   p.Stock,
		OccurredAt: now,
		Status:     StatusItemDeleted,
	}
}
