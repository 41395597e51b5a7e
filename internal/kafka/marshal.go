package kafka

import (
	"encoding/json"
	"fmt"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
)

func DecodeEnvelope(b []byte) (orders.Envelope, error) {
	var env orders.Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return env, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
}

// UnwrapPayload memudahkan decode payload spesifik
func UnwrapPayload[T any](payload json.RawMessage) (T, error) {
	var t T
	if err := json.Unmarshal(payload, &t); err != nil {
		return t, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}
