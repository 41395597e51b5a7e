package orders

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

var validNext = map[Status]map[Status]bool{
	StatusPending:   {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted: {},
	StatusCancelled: {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := validNext[st]; !ok {
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
	}
	return st, nil
}
