// Package apperrors holds the error taxonomy shared by the record store, the
// quote editor and the HTTP layer.
//
// Callers match with errors.Is against the sentinels (ErrValidation,
// ErrNotFound, ErrStorage, ErrConflict) or errors.As against the concrete
// types when they need the field/kind details.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
	// ErrConflict marks a write rejected because the collection changed since it was read.
	ErrConflict = errors.New("storage version conflict")
)

// ValidationError reports a missing or out-of-range input field.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a lookup by id that yielded nothing.
type NotFoundError struct {
	Kind string
	ID   int
}

func NewNotFound(kind string, id int) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StorageError wraps a failure of the key-value substrate or of record
// (de)serialization.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func NewStorage(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }
