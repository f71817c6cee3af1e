package errors

import "fmt"

// ResourceError represents errors about a board-scoped resource (board,
// list, card, comment, label, attachment).
type ResourceError struct {
	Type     string
	Resource string
	ID       string
	Cause    error
}

func (e *ResourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s - %v", e.Type, e.Resource, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", e.Type, e.Resource, e.ID)
}

func (e *ResourceError) Unwrap() error {
	return e.Cause
}

// Resource error types
const (
	ErrTypeNotFound      = "NOT_FOUND"
	ErrTypeConflict      = "CONFLICT"
	ErrTypeStorageFailed = "STORAGE_FAILED"
)

// NewNotFoundError creates a not found error for the named resource
func NewNotFoundError(resource, id string, cause error) *ResourceError {
	return &ResourceError{
		Type:     ErrTypeNotFound,
		Resource: resource,
		ID:       id,
		Cause:    cause,
	}
}

// NewConflictError creates a conflict error for the named resource
func NewConflictError(resource, id string, cause error) *ResourceError {
	return &ResourceError{
		Type:     ErrTypeConflict,
		Resource: resource,
		ID:       id,
		Cause:    cause,
	}
}

// NewStorageError creates a storage error for the named resource
func NewStorageError(resource, id string, cause error) *ResourceError {
	return &ResourceError{
		Type:     ErrTypeStorageFailed,
		Resource: resource,
		ID:       id,
		Cause:    cause,
	}
}
