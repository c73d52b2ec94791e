package models

import (
	"testing"
	"time"
)

func TestResolveSnapshot(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	t.Run("prefers live product fields", func(t *testing.T) {
		p := testProduct(10)
		m := NewInitialStockMovement(p, now)

		// The product was renamed after the movement was written.
		live := *p
		live.Name = "Nama Baru"

		snap := ResolveSnapshot(m, &live)
		if !snap.Live {
			t.Fatal("expected live snapshot")
		}
		if snap.Name != "Nama Baru" {
			t.Fatalf("expected live name, got %q", snap.Name)
		}
	})

	t.Run("falls back to cached fields when product is gone", func(t *testing.T) {
		p := testProduct(10)
		m := NewDeletionMovement(p, now)

		snap := ResolveSnapshot(m, nil)
		if snap.Live {
			t.Fatal("expected cached snapshot")
		}
		if snap.Name != p.Name || snap.Category != p.Category {
			t.Fatalf("expected cached fields, got %q/%q", snap.Name, snap.Category)
		}
		if snap.ImageURL == nil || *snap.ImageURL != *p.ImageURL {
			t.Fatal("expected cached image URL")
		}
	})
}
