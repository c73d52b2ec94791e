package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/gudang/pkg/httpx"
	pkgvalidator "github.com/ghuser/gudang/pkg/validator"
	appsvcs "github.com/ghuser/gudang/services/inventory/application/services"
	"github.com/ghuser/gudang/services/inventory/domain/models"
)

// entryDateLayout is the wire format for the user-chosen entry date.
const entryDateLayout = "2006-01-02"

// maxImageMemory caps the in-memory portion of multipart parsing; larger
// files spill to disk. The router's body limit bounds the total size.
const maxImageMemory = 4 << 20

// ProductForm is the multipart form for POST /products and PUT /products/{id}.
type ProductForm struct {
	Name      string `json:"name" validate:"required,max=255"`
	Category  string `json:"category" validate:"required,max=255"`
	Stock     int    `json:"stock" validate:"gte=0"`
	EntryDate string `json:"entry_date" validate:"omitempty,datetime=2006-01-02"`
}

// parseProductForm decodes and validates the multipart product form,
// returning the service input. Writes the error response itself on failure.
// The optional "image" part becomes an ImageUpload streaming straight from
// the multipart reader; the caller must finish the service call before the
// request body is closed.
func parseProductForm(w http.ResponseWriter, r *http.Request) (*appsvcs.ProductInput, bool) {
	if err := r.ParseMultipartForm(maxImageMemory); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return nil, false
	}

	form := ProductForm{
		Name:      r.FormValue("name"),
		Category:  r.FormValue("category"),
		EntryDate: r.FormValue("entry_date"),
	}
	if v := r.FormValue("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "stock must be an integer")
			return nil, false
		}
		form.Stock = stock
	}
	if ok := pkgvalidator.ValidateStruct(w, &form); !ok {
		return nil, false
	}

	enteredAt := time.Now().UTC().Truncate(24 * time.Hour)
	if form.EntryDate != "" {
		parsed, err := time.Parse(entryDateLayout, form.EntryDate)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "entry_date must be YYYY-MM-DD")
			return nil, false
		}
		enteredAt = parsed
	}

	in := &appsvcs.ProductInput{
		Name:      form.Name,
		Category:  form.Category,
		Stock:     form.Stock,
		EnteredAt: enteredAt,
	}

	if file, header, err := r.FormFile("image"); err == nil {
		in.Image = &appsvcs.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Data:        file,
		}
	}

	return in, true
}

// ProductResponse is the JSON shape of a product in all inventory responses.
type ProductResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Stock     int       `json:"stock"`
	ImageURL  *string   `json:"image_url"`
	EnteredAt string    `json:"entered_at"`
}

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Stock:     p.Stock,
		ImageURL:  p.ImageURL,
		EnteredAt: p.EnteredAt.Format(entryDateLayout),
	}
}

// PageResponse wraps a paginated collection with its total count.
type PageResponse[T any] struct {
	Items   []T `json:"items"`
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// pagination reads ?page and ?per_page with the defaults the UI uses.
func pagination(r *http.Request) (page, perPage int) {
	page, perPage = 1, 10
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && v > 0 && v <= 100 {
		perPage = v
	}
	return page, perPage
}
