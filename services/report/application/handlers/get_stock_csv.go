package handlers

import (
	"net/http"

	"github.com/ghuser/gudang/pkg/errhttp"
	"github.com/ghuser/gudang/pkg/httpx"
	appsvcs "github.com/ghuser/gudang/services/report/application/services"
)

// GetStockCSVHandler handles GET /reports/stock.csv.
type GetStockCSVHandler struct {
	svc *appsvcs.Services
}

// NewGetStockCSVHandler returns a GetStockCSVHandler backed by the given services.
func NewGetStockCSVHandler(svc *appsvcs.Services) *GetStockCSVHandler {
	return &GetStockCSVHandler{svc: svc}
}

// Execute streams the current stock report as a CSV attachment.
func (h *GetStockCSVHandler) Execute(w http.ResponseWriter, r *http.Request) {
	filename, body, err := h.svc.Reports.BuildStockReport(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.CSV(w, filename, body)
}
