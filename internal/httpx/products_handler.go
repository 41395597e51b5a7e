package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	ps, err := h.Svc.ListProducts(ctx)
	h.respond(w, r, http.StatusOK, ps, err)
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	ps, err := h.Svc.SearchProducts(ctx, r.URL.Query().Get("q"))
	h.respond(w, r, http.StatusOK, ps, err)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	p, err := h.Svc.GetProduct(ctx, chi.URLParam(r, "id"))
	h.respond(w, r, http.StatusOK, p, err)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var in orders.ProductInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx, cancel := callCtx(r)
	defer cancel()
	p, err := h.Svc.CreateProduct(ctx, in)
	h.respond(w, r, http.StatusCreated, p, err)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var in orders.ProductInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx, cancel := callCtx(r)
	defer cancel()
	p, err := h.Svc.UpdateProduct(ctx, chi.URLParam(r, "id"), in)
	h.respond(w, r, http.StatusOK, p, err)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := callCtx(r)
	defer cancel()
	err := h.Svc.DeleteProduct(ctx, chi.URLParam(r, "id"))
	h.respond(w, r, http.StatusOK, messageResp{"product deleted"}, err)
}
