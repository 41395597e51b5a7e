package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	os, err := h.Svc.ListOrders(ctx)
	h.respond(w, r, http.StatusOK, os, err)
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	os, err := h.Svc.MyOrders(ctx)
	h.respond(w, r, http.StatusOK, os, err)
}

func (h *Handler) ordersByStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	os, err := h.Svc.OrdersByStatus(ctx, chi.URLParam(r, "status"))
	h.respond(w, r, http.StatusOK, os, err)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	o, err := h.Svc.GetOrder(ctx, chi.URLParam(r, "id"))
	h.respond(w, r, http.StatusOK, o, err)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in orders.OrderInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx, cancel := callCtx(r)
	defer cancel()
	o, err := h.Svc.CreateOrder(ctx, in)
	h.respond(w, r, http.StatusCreated, o, err)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var in orders.OrderInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx, cancel := callCtx(r)
	defer cancel()
	o, err := h.Svc.UpdateOrder(ctx, chi.URLParam(r, "id"), in)
	h.respond(w, r, http.StatusOK, o, err)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	err := h.Svc.DeleteOrder(ctx, chi.URLParam(r, "id"))
	h.respond(w, r, http.StatusOK, messageResp{"order deleted"}, err)
}

func (h *Handler) topClients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	rows, err := h.Svc.TopClients(ctx)
	h.respond(w, r, http.StatusOK, rows, err)
}

func (h *Handler) topSellers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	rows, err := h.Svc.TopSellers(ctx)
	h.respond(w, r, http.StatusOK, rows, err)
}
