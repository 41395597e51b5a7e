package httpx

import (
	"net/http"
	"strings"

	"github.com/ariefcatur/go-seller-orders/internal/auth"
	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Principal, error)
}

// Authenticate attaches the principal of a valid bearer token. Requests
// without one continue unauthenticated and guarded operations reject them.
func Authenticate(v TokenVerifier, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := orders.WithTraceID(r.Context(), middleware.GetReqID(r.Context()))
			if tok := bearer(r.Header.Get("Authorization")); tok != "" {
				p, err := v.Verify(tok)
				if err != nil {
					log.Debug("rejecting bearer token", zap.Error(err))
				} else {
					ctx = auth.WithPrincipal(ctx, p)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearer(h string) string {
	h = strings.TrimSpace(h)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return h
}
