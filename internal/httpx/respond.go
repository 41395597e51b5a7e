package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"go.uber.org/zap"
)

type errorResp struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, orders.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResp{err.Error(), "NOT_FOUND"})
	case errors.Is(err, orders.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResp{err.Error(), "ALREADY_EXISTS"})
	case errors.Is(err, orders.ErrCredentialsInvalid):
		writeJSON(w, http.StatusUnauthorized, errorResp{err.Error(), "CREDENTIALS_INVALID"})
	case errors.Is(err, orders.ErrInsufficientStock):
		writeJSON(w, http.StatusConflict, errorResp{err.Error(), "INSUFFICIENT_STOCK"})
	case errors.Is(err, orders.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResp{err.Error(), "VALIDATION_FAILED"})
	default:
		h.Log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResp{"internal error", "INTERNAL"})
	}
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid json: %v", orders.ErrValidation, err)
	}
	return nil
}
