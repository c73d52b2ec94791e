package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/gudang/pkg/errhttp"
	"github.com/ghuser/gudang/pkg/httpx"
	appsvcs "github.com/ghuser/gudang/services/report/application/services"
)

// RecentMovementResponse is one row of the dashboard's recent-activity list.
type RecentMovementResponse struct {
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Type       string    `json:"type"`
	Quantity   int       `json:"quantity"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
	Deleted    bool      `json:"deleted"`
}

// DashboardResponse is the landing-page overview payload.
type DashboardResponse struct {
	TotalProducts  int                      `json:"total_products"`
	TotalStock     int                      `json:"total_stock"`
	TotalMovements int                      `json:"total_movements"`
	Recent         []RecentMovementResponse `json:"recent"`
}

// GetDashboardHandler handles GET /dashboard.
type GetDashboardHandler struct {
	svc *appsvcs.Services
}

// NewGetDashboardHandler returns a GetDashboardHandler backed by the given services.
func NewGetDashboardHandler(svc *appsvcs.Services) *GetDashboardHandler {
	return &GetDashboardHandler{svc: svc}
}

// Execute returns the counters plus the latest movements.
func (h *GetDashboardHandler) Execute(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Dashboard.Summary(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	recent := make([]RecentMovementResponse, len(summary.Recent))
	for i, e := range summary.Recent {
		recent[i] = RecentMovementResponse{
			Name:       e.Product.Name,
			Category:   e.Product.Category,
			Type:       string(e.Movement.Type),
			Quantity:   e.Movement.Quantity,
			Status:     e.Movement.Status,
			OccurredAt: e.Movement.OccurredAt,
			Deleted:    !e.Product.Live,
		}
	}

	httpx.JSON(w, http.StatusOK, DashboardResponse{
		TotalProducts:  summary.TotalProducts,
		TotalStock:     summary.TotalStock,
		TotalMovements: summary.TotalMovements,
		Recent:         recent,
	})
}
