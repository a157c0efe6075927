package models

import "github.com/pkg/errors"

// Error kinds recognized by the API layer, wrap them with errors.Wrap to
// add detail. Ownership errors are checked before status errors so an
// unrelated actor never learns the current status of a request.
var (
	ErrInvalidInput      = errors.New("invalid request data")
	ErrNotFound          = errors.New("record not found")
	ErrForbidden         = errors.New("operation is not allowed for this user")
	ErrInvalidTransition = errors.New("action is not allowed in the current status")
	ErrRequestRejected   = errors.New("request was rejected by the manager")
	ErrConflict          = errors.New("request was changed by a concurrent operation")
)
