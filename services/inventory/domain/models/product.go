package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const maxFieldLength = 255

// Product is the current-state row for a stocked warehouse item.
// Stock is the live quantity; every change to it is mirrored by exactly one
// Movement row. EnteredAt is the user-chosen entry date, distinct from the
// timestamps on the movement history.
type Product struct {
	ID        uuid.UUID
	Name      string
	Category  string
	Stock     int
	ImageURL  *string
	EnteredAt time.Time
}

// NewProduct constructs a valid Product with a generated ID.
func NewProduct(name, category string, stock int, imageURL *string, enteredAt time.Time) (*Product, error) {
	p := &Product{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		Stock:     stock,
		ImageURL:  imageURL,
		EnteredAt: enteredAt,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate enforces structural constraints: non-empty name and category,
// bounded lengths, non-negative stock.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("product name must not be empty")
	}
	if len(p.Name) > maxFieldLength {
		return fmt.Errorf("product name must not exceed %d characters", maxFieldLength)
	}
	if p.Category == "" {
		return fmt.Errorf("product category must not be empty")
	}
	if len(p.Category) > maxFieldLength {
		return fmt.Errorf("product category must not exceed %d characters", maxFieldLength)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product stock must not be negative")
	}
	return nil
}
