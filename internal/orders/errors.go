package orders

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrCredentialsInvalid = errors.New("invalid credentials")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrValidation         = errors.New("validation failed")
	ErrInternal           = errors.New("internal error")
)

// InsufficientStockError reports the line that could not be reserved.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	name := e.ProductName
	if name == "" {
		name = e.ProductID
	}
	return fmt.Sprintf("product %s exceeds available quantity: requested %d, available %d",
		name, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

func isDomain(err error) bool {
	for _, k := range []error{ErrNotFound, ErrAlreadyExists, ErrCredentialsInvalid,
		ErrInsufficientStock, ErrValidation, ErrInternal} {
		if errors.Is(err, k) {
			return true
		}
	}
	return false
}

// asInternal keeps business errors as they are and tags every other
// failure coming out of the store with ErrInternal.
func asInternal(op string, err error) error {
	if err == nil || isDomain(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
