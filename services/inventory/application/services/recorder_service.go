package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/gudang/pkg/cache"
	"github.com/ghuser/gudang/pkg/logger"
	inventorydomain "github.com/ghuser/gudang/services/inventory/domain"
	"github.com/ghuser/gudang/services/inventory/domain/models"
	"github.com/ghuser/gudang/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/gudang/services/inventory/domain/services"
)

// ImageUpload carries an image accompanying a create or edit. Data is read
// exactly once during Upload.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        io.Reader
}

// ProductInput is the full field set for a create or edit. Edits are a full
// replace: every field overwrites the stored value.
type ProductInput struct {
	Name      string
	Category  string
	Stock     int
	EnteredAt time.Time
	Image     *ImageUpload // nil when no new image accompanies the request
}

// ObjectNamer builds the stored object name for an uploaded file.
// Injected so tests can pin the name; production uses storage.ObjectName.
type ObjectNamer func(original string, now time.Time) string

// RecorderService is the stock movement recorder: it translates each
// user-initiated inventory change into the correct sequence of store writes,
// deriving the audit movement from the kind of change.
//
// Durability contract per operation:
//   - Create: image upload, product insert, and IN movement are
//     all-or-nothing. A failed upload aborts before any store write.
//   - Edit: the product update must succeed; a failed movement append
//     afterwards is logged and swallowed — the edit still succeeds.
//     Inventory correctness is primary, audit completeness best-effort.
//   - Delete: the DELETE movement is written first and must succeed before
//     the row is removed. A failed delete after a successful append leaves
//     the movement in place and surfaces the error for retry.
type RecorderService struct {
	products  repositories.InventoryStore
	movements repositories.MovementLog
	images    repositories.ImageStore
	cache     *pkgcache.ProductCache
	objName   ObjectNamer
	log       logger.Logger
	now       func() time.Time
}

// NewRecorderService wires a RecorderService. cache may be nil (no read
// model); images may be nil only if callers never pass an ImageUpload.
func NewRecorderService(
	products repositories.InventoryStore,
	movements repositories.MovementLog,
	images repositories.ImageStore,
	cache *pkgcache.ProductCache,
	objName ObjectNamer,
	log logger.Logger,
) *RecorderService {
	return &RecorderService{
		products:  products,
		movements: movements,
		images:    images,
		cache:     cache,
		objName:   objName,
		log:       log,
		now:       time.Now,
	}
}

// Create inserts a new product and records its IN movement ("Initial Stock").
// The image upload, when present, is a precondition: if it fails, nothing is
// written and no partial product row exists.
func (s *RecorderService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	imageURL, err := s.uploadImage(ctx, in.Image)
	if err != nil {
		return nil, err
	}

	p, err := models.NewProduct(in.Name, in.Category, in.Stock, imageURL, in.EnteredAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidProduct, err)
	}
	if err := domainsvcs.ValidateProductForWrite(p); err != nil {
		return nil, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidProduct, err)
	}

	initial := models.NewInitialStockMovement(p, s.now().UTC())
	if err := s.products.Insert(ctx, p, initial); err != nil {
		if errors.Is(err, inventorydomain.ErrInvalidProduct) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: insert product: %w", inventorydomain.ErrStoreWrite, err)
	}

	return p, nil
}

// Edit full-replaces a product's fields and records an ADJUSTMENT movement
// for the stock delta. A no-op stock change records nothing. The movement
// append is best-effort: its failure is logged, not returned.
func (s *RecorderService) Edit(ctx context.Context, id uuid.UUID, in ProductInput) (*models.Product, error) {
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	oldStock := existing.Stock

	// No new image keeps the prior URL; the edit never clears an image.
	imageURL := existing.ImageURL
	if in.Image != nil {
		if imageURL, err = s.uploadImage(ctx, in.Image); err != nil {
			return nil, err
		}
	}

	updated := &models.Product{
		ID:        id,
		Name:      in.Name,
		Category:  in.Category,
		Stock:     in.Stock,
		ImageURL:  imageURL,
		EnteredAt: in.EnteredAt,
	}
	if err := updated.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidProduct, err)
	}
	if err := domainsvcs.ValidateProductForWrite(updated); err != nil {
		return nil, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidProduct, err)
	}

	if err := s.products.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("%w: update product: %w", inventorydomain.ErrStoreWrite, err)
	}
	s.invalidateCache(ctx, id)

	if m, changed := models.NewAdjustmentMovement(updated, oldStock, s.now().UTC()); changed {
		if err := s.movements.Append(ctx, m); err != nil {
			// The update already succeeded; losing the audit row does not
			// roll it back. See the durability contract above.
			s.log.ErrorContext(ctx, "movement append failed after successful update",
				"product_id", id,
				"old_stock", oldStock,
				"new_stock", updated.Stock,
				"error", err,
			)
		}
	}

	return updated, nil
}

// Delete removes a product, writing its DELETE movement first so the history
// survives the row. The movement carries a nil product reference and the
// stock held at deletion time.
func (s *RecorderService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}

	m := models.NewDeletionMovement(p, s.now().UTC())
	if err := s.movements.Append(ctx, m); err != nil {
		return fmt.Errorf("%w: append delete movement: %w", inventorydomain.ErrAuditWrite, err)
	}

	if err := s.products.Delete(ctx, id); err != nil {
		// The DELETE movement stays: a phantom deletion event for a product
		// that still exists is tolerable; the caller retries.
		return fmt.Errorf("%w: delete product: %w", inventorydomain.ErrStoreWrite, err)
	}
	s.invalidateCache(ctx, id)

	return nil
}

// GetByID retrieves a product using a read-through cache:
//  1. Check Redis first.
//  2. On miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the result.
func (s *RecorderService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cachedToProduct(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "product cache read failed", "product_id", id, "error", err)
		}
	}

	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), productToCached(p))
		}()
	}

	return p, nil
}

// List returns a page of products plus the total count.
func (s *RecorderService) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Product, int, error) {
	products, total, err := s.products.Find(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

// History returns a page of resolved movement history entries plus the total count.
func (s *RecorderService) History(ctx context.Context, opts repositories.QueryOpts) ([]*models.HistoryEntry, int, error) {
	entries, total, err := s.movements.Find(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	return entries, total, nil
}

func (s *RecorderService) uploadImage(ctx context.Context, img *ImageUpload) (*string, error) {
	if img == nil {
		return nil, nil
	}
	url, err := s.images.Upload(ctx, s.objName(img.Filename, s.now()), img.ContentType, img.Data, img.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: upload image: %w", inventorydomain.ErrStoreWrite, err)
	}
	return &url, nil
}

func (s *RecorderService) invalidateCache(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "product cache invalidation failed", "product_id", id, "error", err)
	}
}

func cachedToProduct(c *pkgcache.CachedProduct) *models.Product {
	var imageURL *string
	if c.ImageURL != "" {
		u := c.ImageURL
		imageURL = &u
	}
	return &models.Product{
		ID:        c.ID,
		Name:      c.Name,
		Category:  c.Category,
		Stock:     c.Stock,
		ImageURL:  imageURL,
		EnteredAt: c.EnteredAt,
	}
}

func productToCached(p *models.Product) *pkgcache.CachedProduct {
	imageURL := ""
	if p.ImageURL != nil {
		imageURL = *p.ImageURL
	}
	return &pkgcache.CachedProduct{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Stock:     p.Stock,
		ImageURL:  imageURL,
		EnteredAt: p.EnteredAt,
	}
}
