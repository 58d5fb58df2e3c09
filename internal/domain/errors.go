// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Schema-related errors
	ErrModuleNotFound   = fmt.Errorf("module %w", ErrNotFound)
	ErrFieldNotFound    = fmt.Errorf("field %w", ErrNotFound)
	ErrDuplicateKey     = errors.New("field key already exists in module")
	ErrInvalidOptions   = errors.New("field type requires at least one option")
	ErrInvalidFieldType = errors.New("invalid field type")
	ErrInvalidScope     = errors.New("invalid schema scope")

	// Ordering-related errors
	ErrInvalidReorder = errors.New("ordering does not match current members")
	ErrPartialReorder = errors.New("reorder partially applied")
)

// PartialReorderError reports a reorder batch that failed part way through on a
// store without transactions. Current holds the order read back from storage
// after recovery; callers must render that instead of their optimistic order.
type PartialReorderError struct {
	Scope   string
	Applied int
	Current []uuid.UUID
	Err     error
}

func (e *PartialReorderError) Error() string {
	return fmt.Sprintf("%s: %s after %d writes: %v", ErrPartialReorder, e.Scope, e.Applied, e.Err)
}

func (e *PartialReorderError) Is(target error) bool {
	return target == ErrPartialReorder
}

func (e *PartialReorderError) Unwrap() error {
	return e.Err
}
