package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the id does not resolve to a live entity.
	ErrNotFound = errors.New("not found")
)

// UniqueConstraintError reports which unique candidate field collided
// with an existing live row.
type UniqueConstraintError struct {
	Field string
}

func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("%s duplicated", e.Field)
}

// InvalidArgumentError reports a field value that violates a domain
// invariant at construction time.
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// InsufficientStockError reports a stock decrement that would drive the
// quantity below zero. The stored quantity is left untouched.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: have %d, requested %d", e.Available, e.Requested)
}
