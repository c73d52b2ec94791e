package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_NonNil(t *testing.T) {
	for _, err := range []error{ErrProductNotFound, ErrInvalidProduct, ErrStoreWrite, ErrAuditWrite} {
		if err == nil {
			t.Fatal("sentinel error must not be nil")
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get product: %w", ErrProductNotFound)
	if !errors.Is(wrapped, ErrProductNotFound) {
		t.Fatal("errors.Is must match wrapped ErrProductNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidProduct, errors.New("name too long"))
	if !errors.Is(wrapped2, ErrInvalidProduct) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidProduct")
	}

	wrapped3 := fmt.Errorf("%w: append delete movement: %w", ErrAuditWrite, errors.New("timeout"))
	if !errors.Is(wrapped3, ErrAuditWrite) {
		t.Fatal("errors.Is must match wrapped ErrAuditWrite")
	}
	if errors.Is(wrapped3, ErrStoreWrite) {
		t.Fatal("ErrAuditWrite must not match ErrStoreWrite")
	}
}
