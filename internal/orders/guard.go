package orders

import (
	"strings"

	"github.com/ariefcatur/go-seller-orders/internal/auth"
	"github.com/google/uuid"
)

// CanonicalID normalizes an entity id so that owner comparisons do not
// depend on case or surrounding whitespace.
func CanonicalID(id string) string {
	id = strings.TrimSpace(id)
	if u, err := uuid.Parse(id); err == nil {
		return u.String()
	}
	return id
}

// Authorize allows p to touch an entity owned by owner. A nil principal is
// always denied. Callers resolve the entity first so that a missing entity
// surfaces as ErrNotFound, never as a denial.
func Authorize(p *auth.Principal, owner string) error {
	if p == nil || p.ID == "" {
		return ErrCredentialsInvalid
	}
	if CanonicalID(owner) != CanonicalID(p.ID) {
		return ErrCredentialsInvalid
	}
	return nil
}
