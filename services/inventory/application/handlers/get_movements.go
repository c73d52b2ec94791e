package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/gudang/pkg/errhttp"
	"github.com/ghuser/gudang/pkg/httpx"
	appsvcs "github.com/ghuser/gudang/services/inventory/application/services"
	"github.com/ghuser/gudang/services/inventory/domain/models"
	"github.com/ghuser/gudang/services/inventory/domain/repositories"
)

// MovementResponse is one row of the movement history, newest first. The
// product block is resolved at read time: live fields while the product
// exists, the movement's cached copies once it is deleted.
type MovementResponse struct {
	ID         uuid.UUID  `json:"id"`
	ProductID  *uuid.UUID `json:"product_id"`
	Type       string     `json:"type"`
	Quantity   int        `json:"quantity"`
	Status     string     `json:"status"`
	OccurredAt time.Time  `json:"occurred_at"`
	Product    struct {
		Name     string  `json:"name"`
		Category string  `json:"category"`
		ImageURL *string `json:"image_url"`
		Deleted  bool    `json:"deleted"`
	} `json:"product"`
}

func toMovementResponse(e *models.HistoryEntry) MovementResponse {
	resp := MovementResponse{
		ID:         e.Movement.ID,
		ProductID:  e.Movement.ProductID,
		Type:       string(e.Movement.Type),
		Quantity:   e.Movement.Quantity,
		Status:     e.Movement.Status,
		OccurredAt: e.Movement.OccurredAt,
	}
	resp.Product.Name = e.Product.Name
	resp.Product.Category = e.Product.Category
	resp.Product.ImageURL = e.Product.ImageURL
	resp.Product.Deleted = !e.Product.Live
	return resp
}

// GetMovementsHandler handles GET /movements: the paginated audit history.
type GetMovementsHandler struct {
	svc *appsvcs.Services
}

// NewGetMovementsHandler returns a GetMovementsHandler backed by the given services.
func NewGetMovementsHandler(svc *appsvcs.Services) *GetMovementsHandler {
	return &GetMovementsHandler{svc: svc}
}

// Execute lists movements newest-first with ?page, ?per_page, ?search.
// Search matches the product name captured on the movement row, so history
// for deleted products stays findable.
func (h *GetMovementsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	page, perPage := pagination(r)

	entries, total, err := h.svc.Recorder.History(r.Context(), repositories.QueryOpts{
		Limit:  perPage,
		Offset: (page - 1) * perPage,
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]MovementResponse, len(entries))
	for i, e := range entries {
		items[i] = toMovementResponse(e)
	}
	httpx.JSON(w, http.StatusOK, PageResponse[MovementResponse]{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}
