package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/gudang/pkg/auth"
	"github.com/ghuser/gudang/pkg/errhttp"
	"github.com/ghuser/gudang/pkg/httpx"
	pkgvalidator "github.com/ghuser/gudang/pkg/validator"
	appsvcs "github.com/ghuser/gudang/services/account/application/services"
)

// PostLoginHandler handles POST /auth/login.
type PostLoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// NewPostLoginHandler returns a PostLoginHandler backed by the given services
// and session store.
func NewPostLoginHandler(svc *appsvcs.Services, store sessions.Store) *PostLoginHandler {
	return &PostLoginHandler{svc: svc, store: store}
}

// Execute verifies credentials and issues the session cookie.
func (h *PostLoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CredentialsRequest](w, r)
	if !ok {
		return
	}

	u, err := h.svc.Accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.SignIn(w, r, h.store, u.ID); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "could not create session")
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(u))
}
