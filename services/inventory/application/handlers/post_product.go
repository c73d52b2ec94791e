package handlers

import (
	"net/http"

	"github.com/ghuser/gudang/pkg/errhttp"
	"github.com/ghuser/gudang/pkg/httpx"
	appsvcs "github.com/ghuser/gudang/services/inventory/application/services"
)

// PostProductHandler handles POST /products: create a product and record its
// initial stock movement.
type PostProductHandler struct {
	svc *appsvcs.Services
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute creates a new product from a multipart form (name, category,
// stock, entry_date, optional image).
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	in, ok := parseProductForm(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Recorder.Create(r.Context(), *in)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toProductResponse(p))
}
