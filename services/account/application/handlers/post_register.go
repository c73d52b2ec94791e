package handlers

import (
	"net/http"

	"github.com/ghuser/gudang/pkg/errhttp"
	"github.com/ghuser/gudang/pkg/httpx"
	pkgvalidator "github.com/ghuser/gudang/pkg/validator"
	appsvcs "github.com/ghuser/gudang/services/account/application/services"
)

// PostRegisterHandler handles POST /auth/register.
type PostRegisterHandler struct {
	svc *appsvcs.Services
}

// NewPostRegisterHandler returns a PostRegisterHandler backed by the given services.
func NewPostRegisterHandler(svc *appsvcs.Services) *PostRegisterHandler {
	return &PostRegisterHandler{svc: svc}
}

// Execute creates an account. Registration does not sign the user in; the
// client follows up with a login.
func (h *PostRegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CredentialsRequest](w, r)
	if !ok {
		return
	}

	u, err := h.svc.Accounts.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toUserResponse(u))
}
