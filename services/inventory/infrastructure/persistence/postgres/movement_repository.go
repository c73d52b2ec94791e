package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/gudang/pkg/database"
	"github.com/ghuser/gudang/pkg/events"
	domainevents "github.com/ghuser/gudang/services/inventory/domain/events"
	"github.com/ghuser/gudang/services/inventory/domain/models"
	"github.com/ghuser/gudang/services/inventory/domain/repositories"
)

// MovementRepository implements repositories.MovementLog against PostgreSQL.
// The stock_movements table is append-only: this repository issues INSERT and
// SELECT statements and nothing else.
type MovementRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewMovementRepository returns a MovementRepository backed by the given
// connection pool and event bus.
func NewMovementRepository(db *database.Database, bus *events.EventBus) *MovementRepository {
	return &MovementRepository{db: db, bus: bus}
}

// Append persists one movement row and publishes a MovementRecordedEvent in
// the same transaction.
func (r *MovementRepository) Append(ctx context.Context, m *models.Movement) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := appendMovementTx(ctx, tx, m); err != nil {
			return err
		}
		if r.bus != nil {
			if err := publishMovementRecorded(tx, r.bus, m); err != nil {
				return fmt.Errorf("publish movement recorded: %w", err)
			}
		}
		return nil
	})
}

// Find retrieves a page of history entries ordered by occurrence time
// descending plus the total count. The product snapshot is resolved here,
// once, from the LEFT JOIN: live fields when the product row still exists,
// cached fields otherwise. Search matches the cached product name.
func (r *MovementRepository) Find(ctx context.Context, opts repositories.QueryOpts) ([]*models.HistoryEntry, int, error) {
	pattern := likePattern(opts.Search)

	rows, err := r.db.DB().QueryContext(ctx, historySelect+`
		WHERE ($1 = '' OR m.product_name_cached ILIKE $2)
		ORDER BY m.occurred_at DESC, m.id
		LIMIT $3 OFFSET $4`,
		opts.Search, pattern, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query movements: %w", err)
	}
	entries, err := collectHistory(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.DB().QueryRowContext(ctx, `
		SELECT count(*) FROM stock_movements m
		WHERE ($1 = '' OR m.product_name_cached ILIKE $2)`,
		opts.Search, pattern,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	return entries, total, nil
}

// FindAllForExport returns the full history, newest first, for the CSV report.
func (r *MovementRepository) FindAllForExport(ctx context.Context) ([]*models.HistoryEntry, error) {
	rows, err := r.db.DB().QueryContext(ctx, historySelect+` ORDER BY m.occurred_at DESC, m.id`)
	if err != nil {
		return nil, fmt.Errorf("query movements: %w", err)
	}
	return collectHistory(rows)
}

// Count returns the total number of movement rows.
func (r *MovementRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.DB().QueryRowContext(ctx,
		`SELECT count(*) FROM stock_movements`,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return total, nil
}

const historySelect = `
	SELECT m.id, m.product_id, m.product_name_cached, m.category_cached,
	       m.image_url_cached, m.type, m.quantity, m.occurred_at, m.status,
	       p.id, p.name, p.category, p.stock, p.image_url, p.entered_at
	FROM stock_movements m
	LEFT JOIN products p ON p.id = m.product_id`

func collectHistory(rows *sql.Rows) ([]*models.HistoryEntry, error) {
	defer rows.Close() //nolint:errcheck

	var entries []*models.HistoryEntry
	for rows.Next() {
		var m models.Movement
		var productID sql.Null[uuid.UUID]
		var cachedImage sql.NullString
		var liveID sql.Null[uuid.UUID]
		var liveName, liveCategory, liveImage sql.NullString
		var liveStock sql.NullInt64
		var liveEnteredAt sql.NullTime

		if err := rows.Scan(
			&m.ID, &productID, &m.Name, &m.Category,
			&cachedImage, &m.Type, &m.Quantity, &m.OccurredAt, &m.Status,
			&liveID, &liveName, &liveCategory, &liveStock, &liveImage, &liveEnteredAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if productID.Valid {
			id := productID.V
			m.ProductID = &id
		}
		if cachedImage.Valid {
			m.ImageURL = &cachedImage.String
		}

		var live *models.Product
		if liveID.Valid {
			live = &models.Product{
				ID:        liveID.V,
				Name:      liveName.String,
				Category:  liveCategory.String,
				Stock:     int(liveStock.Int64),
				EnteredAt: liveEnteredAt.Time,
			}
			if liveImage.Valid {
				live.ImageURL = &liveImage.String
			}
		}

		entries = append(entries, &models.HistoryEntry{
			Movement: m,
			Product:  models.ResolveSnapshot(&m, live),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movements: %w", err)
	}
	return entries, nil
}

// appendMovementTx inserts one movement row inside an open transaction.
// Shared with ProductRepository.Insert so creation is atomic.
func appendMovementTx(ctx context.Context, tx *sql.Tx, m *models.Movement) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO stock_movements
			(id, product_id, product_name_cached, category_cached, image_url_cached,
			 type, quantity, occurred_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.ProductID, m.Name, m.Category, m.ImageURL,
		string(m.Type), m.Quantity, m.OccurredAt, m.Status,
	); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// publishMovementRecorded publishes the event within the caller's transaction.
func publishMovementRecorded(tx *sql.Tx, bus *events.EventBus, m *models.Movement) error {
	event := domainevents.MovementRecordedEvent{
		EventID:    uuid.New(),
		Version:    1,
		MovementID: m.ID,
		ProductID:  m.ProductID,
		Name:       m.Name,
		Category:   m.Category,
		Type:       string(m.Type),
		Quantity:   m.Quantity,
		Status:     m.Status,
		OccurredAt: m.OccurredAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicMovementRecorded, msg)
}
