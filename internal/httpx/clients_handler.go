package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	cs, err := h.Svc.ListClients(ctx)
	h.respond(w, r, http.StatusOK, cs, err)
}

func (h *Handler) myClients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	cs, err := h.Svc.MyClients(ctx)
	h.respond(w, r, http.StatusOK, cs, err)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	c, err := h.Svc.GetClient(ctx, chi.URLParam(r, "id"))
	h.respond(w, r, http.StatusOK, c, err)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var in orders.ClientInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx, cancel := callCtx(r)
	defer cancel()
	c, err := h.Svc.CreateClient(ctx, in)
	h.respond(w, r, http.StatusCreated, c, err)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	var in orders.ClientInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx, cancel := callCtx(r)
	defer cancel()
	c, err := h.Svc.UpdateClient(ctx, chi.URLParam(r, "id"), in)
	h.respond(w, r, http.StatusOK, c, err)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	err := h.Svc.DeleteClient(ctx, chi.URLParam(r, "id"))
	h.respond(w, r, http.StatusOK, messageResp{"client deleted"}, err)
}
