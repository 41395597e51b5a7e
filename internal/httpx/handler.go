package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Svc *orders.Service
	Log *zap.Logger
}

type messageResp struct {
	Message string `json:"message"`
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/users", h.registerUser)
	r.Post("/login", h.login)
	r.Get("/me", h.currentUser)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Get("/search", h.searchProducts)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})

	r.Route("/clients", func(r chi.Router) {
		r.Get("/", h.listClients)
		r.Post("/", h.createClient)
		r.Get("/mine", h.myClients)
		r.Get("/{id}", h.getClient)
		r.Put("/{id}", h.updateClient)
		r.Delete("/{id}", h.deleteClient)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.createOrder)
		r.Get("/mine", h.myOrders)
		r.Get("/status/{status}", h.ordersByStatus)
		r.Get("/{id}", h.getOrder)
		r.Put("/{id}", h.updateOrder)
		r.Delete("/{id}", h.deleteOrder)
	})

	r.Get("/reports/top-clients", h.topClients)
	r.Get("/reports/top-sellers", h.topSellers)
}

func callCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 5*time.Second)
}

// respond writes v with code, or maps err.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, code int, v any, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, code, v)
}
