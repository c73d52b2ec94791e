package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/gudang/services/inventory/domain/events"
)

// The JSON field names are a cross-process contract between the API (tx
// publisher) and the worker (subscriber); renaming one silently breaks cache
// invalidation.
func TestMovementRecordedEvent_JSONFieldNames(t *testing.T) {
	productID := uuid.New()
	evt := events.MovementRecordedEvent{
		EventID:    uuid.New(),
		Version:    1,
		MovementID: uuid.New(),
		ProductID:  &productID,
		Name:       "Kardus Besar",
		Category:   "Packaging",
		Type:       "IN",
		Quantity:   25,
		Status:     "Initial Stock",
		OccurredAt: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	for _, key := range []string{
		"event_id", "version", "movement_id", "product_id",
		"name", "category", "type", "quantity", "status", "occurred_at",
	} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing JSON field %q", key)
		}
	}
}

func TestMovementRecordedEvent_NilProductID(t *testing.T) {
	evt := events.MovementRecordedEvent{
		EventID:    uuid.New(),
		Version:    1,
		MovementID: uuid.New(),
		Type:       "DELETE",
		Status:     "Barang Dihapus",
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.MovementRecordedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if decoded.ProductID != nil {
		t.Fatalf("expected nil product ID, got %v", decoded.ProductID)
	}
}
