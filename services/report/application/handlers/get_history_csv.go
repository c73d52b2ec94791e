package handlers

import (
	"net/http"

	"github.com/ghuser/gudang/pkg/errhttp"
	"github.com/ghuser/gudang/pkg/httpx"
	appsvcs "github.com/ghuser/gudang/services/report/application/services"
)

// GetHistoryCSVHandler handles GET /reports/history.csv.
type GetHistoryCSVHandler struct {
	svc *appsvcs.Services
}

// NewGetHistoryCSVHandler returns a GetHistoryCSVHandler backed by the given services.
func NewGetHistoryCSVHandler(svc *appsvcs.Services) *GetHistoryCSVHandler {
	return &GetHistoryCSVHandler{svc: svc}
}

// Execute streams the full movement history as a CSV attachment.
func (h *GetHistoryCSVHandler) Execute(w http.ResponseWriter, r *http.Request) {
	filename, body, err := h.svc.Reports.BuildHistoryReport(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.CSV(w, filename, body)
}
