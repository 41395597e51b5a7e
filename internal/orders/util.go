package orders

import (
	"encoding/json"
	"net/mail"
	"strings"
)

func marshalPayload(v any) (json.RawMessage, error) {
	return json.Marshal(v)
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func validEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s
}
