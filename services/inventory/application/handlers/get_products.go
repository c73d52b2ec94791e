package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/gudang/pkg/errhttp"
	"github.com/ghuser/gudang/pkg/httpx"
	appsvcs "github.com/ghuser/gudang/services/inventory/application/services"
	"github.com/ghuser/gudang/services/inventory/domain/repositories"
)

// GetProductsHandler handles GET /products: paginated catalog browsing with
// name search.
type GetProductsHandler struct {
	svc *appsvcs.Services
}

// NewGetProductsHandler returns a GetProductsHandler backed by the given services.
func NewGetProductsHandler(svc *appsvcs.Services) *GetProductsHandler {
	return &GetProductsHandler{svc: svc}
}

// Execute lists products newest-first with ?page, ?per_page, ?search.
func (h *GetProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	page, perPage := pagination(r)

	products, total, err := h.svc.Recorder.List(r.Context(), repositories.QueryOpts{
		Limit:  perPage,
		Offset: (page - 1) * perPage,
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = toProductResponse(p)
	}
	httpx.JSON(w, http.StatusOK, PageResponse[ProductResponse]{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

// GetProductHandler handles GET /products/{id}.
type GetProductHandler struct {
	svc *appsvcs.Services
}

// NewGetProductHandler returns a GetProductHandler backed by the given services.
func NewGetProductHandler(svc *appsvcs.Services) *GetProductHandler {
	return &GetProductHandler{svc: svc}
}

// Execute fetches one product by ID, served from the read-through cache when warm.
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.svc.Recorder.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProductResponse(p))
}
