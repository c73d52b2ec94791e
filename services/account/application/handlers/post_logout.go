package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/gudang/pkg/auth"
	"github.com/ghuser/gudang/pkg/httpx"
)

// PostLogoutHandler handles POST /auth/logout.
type PostLogoutHandler struct {
	store sessions.Store
}

// NewPostLogoutHandler returns a PostLogoutHandler using the given session store.
func NewPostLogoutHandler(store sessions.Store) *PostLogoutHandler {
	return &PostLogoutHandler{store: store}
}

// Execute expires the session cookie. Logging out without a session is not an
// error.
func (h *PostLogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r, h.store); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "could not end session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
