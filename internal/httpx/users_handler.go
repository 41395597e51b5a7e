package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string `json:"token"`
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var in orders.UserInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx, cancel := callCtx(r)
	defer cancel()
	u, err := h.Svc.RegisterUser(ctx, in)
	h.respond(w, r, http.StatusCreated, u, err)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in loginReq
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx, cancel := callCtx(r)
	defer cancel()
	tok, err := h.Svc.Login(ctx, in.Email, in.Password)
	h.respond(w, r, http.StatusOK, loginResp{Token: tok}, err)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.CurrentUser(r.Context())
	h.respond(w, r, http.StatusOK, p, err)
}
