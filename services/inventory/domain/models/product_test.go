package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewProduct(t *testing.T) {
	enteredAt := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns product with non-zero ID", func(t *testing.T) {
		p, err := NewProduct("Kardus", "Packaging", 5, nil, enteredAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Fatal("expected non-zero UUID for ID")
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		p1, _ := NewProduct("Kardus", "Packaging", 5, nil, enteredAt)
		p2, _ := NewProduct("Kardus", "Packaging", 5, nil, enteredAt)
		if p1.ID == p2.ID {
			t.Fatal("expected unique IDs, got identical")
		}
	})

	t.Run("zero stock is allowed", func(t *testing.T) {
		if _, err := NewProduct("Kardus", "Packaging", 0, nil, enteredAt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProductValidate(t *testing.T) {
	enteredAt := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		product  string
		category string
		stock    int
		wantErr  bool
	}{
		{"valid", "Kardus", "Packaging", 5, false},
		{"empty name", "", "Packaging", 5, true},
		{"empty category", "Kardus", "", 5, true},
		{"negative stock", "Kardus", "Packaging", -1, true},
		{"name at limit", strings.Repeat("a", 255), "Packaging", 5, false},
		{"name over limit", strings.Repeat("a", 256), "Packaging", 5, true},
		{"category over limit", "Kardus", strings.Repeat("a", 256), 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.product, tt.category, tt.stock, nil, enteredAt)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProduct() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
