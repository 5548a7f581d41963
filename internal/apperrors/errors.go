// Package apperrors defines the failure kinds the HTTP layer maps to
// status codes. Anything else bubbling out of a service is treated as a
// collaborator failure and answered with a 500.
package apperrors

import "fmt"

var (
	ErrInvalid       = fmt.Errorf("invalid input")
	ErrConflict      = fmt.Errorf("already exists")
	ErrNotFound      = fmt.Errorf("not found")
	ErrForbidden     = fmt.Errorf("forbidden")
	ErrUnknownSender = fmt.Errorf("unknown sender")
)
