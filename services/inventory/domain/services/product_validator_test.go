package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/gudang/services/inventory/domain/models"
)

func TestValidateDisplayText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Kardus Besar", false},
		{"valid with digits and punctuation", "Baut M8 (10mm)", false},
		{"leading whitespace", " Kardus", true},
		{"trailing whitespace", "Kardus ", true},
		{"only whitespace", "   ", true},
		{"tab character", "Kardus\tBesar", true},
		{"newline character", "Kardus\nBesar", true},
		{"null byte", "Kardus\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDisplayText("name", tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateDisplayText(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateProductForWrite(t *testing.T) {
	makeProduct := func() *models.Product {
		return &models.Product{
			ID:        uuid.New(),
			Name:      "Kardus Besar",
			Category:  "Packaging",
			Stock:     10,
			EnteredAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("nil product returns error", func(t *testing.T) {
		if err := ValidateProductForWrite(nil); err == nil {
			t.Fatal("expected error for nil product")
		}
	})

	t.Run("valid product returns nil", func(t *testing.T) {
		if err := ValidateProductForWrite(makeProduct()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero ID returns error", func(t *testing.T) {
		p := makeProduct()
		p.ID = uuid.Nil
		if err := ValidateProductForWrite(p); err == nil {
			t.Fatal("expected error for zero ID")
		}
	})

	t.Run("whitespace-padded category returns error", func(t *testing.T) {
		p := makeProduct()
		p.Category = " Packaging "
		if err := ValidateProductForWrite(p); err == nil {
			t.Fatal("expected error for padded category")
		}
	})

	t.Run("zero entry date returns error", func(t *testing.T) {
		p := makeProduct()
		p.EnteredAt = time.Time{}
		if err := ValidateProductForWrite(p); err == nil {
			t.Fatal("expected error for zero entry date")
		}
	})
}
