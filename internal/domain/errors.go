package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrInvalidAction    = errors.New("invalid action")
	ErrMalformedPayload = errors.New("no data provided")
	ErrSchemaMissing    = errors.New("table missing from store")
)

// NotFoundError carries the entity kind and identifier of a failed lookup.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError creates a NotFoundError for the given entity and id.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidActionError names the unrecognized action a write request carried.
type InvalidActionError struct {
	Action string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("Invalid action: %s", e.Action)
}

func (e *InvalidActionError) Unwrap() error { return ErrInvalidAction }
