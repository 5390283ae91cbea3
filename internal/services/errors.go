package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers translate these to
// HTTP statuses; anything else maps to a 500.
var (
	// ErrUnauthorized covers bad credentials and bad tokens alike, with
	// no detail about which check failed.
	ErrUnauthorized = errors.New("invalid username/email or password")

	// ErrAccessDenied means the caller is authenticated but does not
	// own the target resource.
	ErrAccessDenied = errors.New("access denied")
)

// NotFoundError reports an entity missing by some lookup key.
type NotFoundError struct {
	Resource string
	Field    string
	Value    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %s", e.Resource, e.Field, e.Value)
}

// BadRequestError carries a client-facing validation message.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func badRequest(format string, args ...any) error {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}
