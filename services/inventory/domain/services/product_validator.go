// Package services contains stateless domain services for the inventory
// bounded context. They enforce business rules operating purely on domain
// types, with zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/gudang/services/inventory/domain/models"
)

// ValidateDisplayText enforces business rules for user-facing text fields
// (name, category) beyond the structural length checks in the Product
// constructor:
//   - No leading or trailing whitespace
//   - No control characters
//   - Must not be only whitespace
func ValidateDisplayText(field, s string) error {
	if s != strings.TrimSpace(s) {
		return fmt.Errorf("%s must not have leading or trailing whitespace", field)
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%s must not be only whitespace", field)
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s must not contain control characters", field)
		}
	}

	return nil
}

// ValidateProductForWrite performs cross-field validation on a
// fully-constructed Product before it is persisted. It assumes structural
// constraints are already satisfied and adds business-level checks.
func ValidateProductForWrite(p *models.Product) error {
	if p == nil {
		return fmt.Errorf("product cannot be nil")
	}

	if p.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if err := ValidateDisplayText("name", p.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if err := ValidateDisplayText("category", p.Category); err != nil {
		return fmt.Errorf("invalid category: %w", err)
	}

	if p.EnteredAt.IsZero() {
		return fmt.Errorf("entry date must be set")
	}

	return nil
}
