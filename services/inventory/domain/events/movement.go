package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicMovementRecorded is the Watermill topic published whenever a stock
// movement row is appended.
const TopicMovementRecorded = "inventory.movement.recorded"

// MovementRecordedEvent is published after a movement is persisted.
// ProductID is nil for DELETE movements. Consumers use it to refresh the
// product read-model cache.
type MovementRecordedEvent struct {
	EventID    uuid.UUID  `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int        `json:"version"`  // Schema version; increment on breaking changes
	MovementID uuid.UUID  `json:"movement_id"`
	ProductID  *uuid.UUID `json:"product_id"`
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	Type       string     `json:"type"`
	Quantity   int        `json:"quantity"`
	Status     string     `json:"status"`
	OccurredAt time.Time  `json:"occurred_at"`
}
