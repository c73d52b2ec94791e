// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/gudang/pkg/httpx"
	accountdomain "github.com/ghuser/gudang/services/account/domain"
	inventorydomain "github.com/ghuser/gudang/services/inventory/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, inventorydomain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, inventorydomain.ErrInvalidProduct):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, inventorydomain.ErrStoreWrite):
		return http.StatusBadGateway // 502 — backing store rejected the write
	case errors.Is(err, inventorydomain.ErrAuditWrite):
		return http.StatusBadGateway // 502 — movement log rejected the append
	case errors.Is(err, accountdomain.ErrUserNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, accountdomain.ErrUsernameTaken):
		return http.StatusConflict // 409
	case errors.Is(err, accountdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
