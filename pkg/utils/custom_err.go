package utils

import "errors"

// Error kinds for the whole core. Services wrap these with
// fmt.Errorf("%w: detail") so controllers can match them with errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Returned by admin login while a temporary password is still in force.
	ErrPasswordChangeRequired = errors.New("password change required")
)
