package handlers

import (
	"net/http"

	"github.com/ghuser/gudang/pkg/auth"
	"github.com/ghuser/gudang/pkg/errhttp"
	"github.com/ghuser/gudang/pkg/httpx"
	appsvcs "github.com/ghuser/gudang/services/account/application/services"
)

// GetMeHandler handles GET /auth/me for the signed-in user.
type GetMeHandler struct {
	svc *appsvcs.Services
}

// NewGetMeHandler returns a GetMeHandler backed by the given services.
func NewGetMeHandler(svc *appsvcs.Services) *GetMeHandler {
	return &GetMeHandler{svc: svc}
}

// Execute resolves the session's user ID to its account. Runs behind
// RequireAuth, so a missing user ID means the middleware was bypassed.
func (h *GetMeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	u, err := h.svc.Accounts.GetByID(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(u))
}
