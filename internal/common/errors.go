// Package common defines sentinel errors shared across the studyboard
// server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorDuplicateUser = errors.New("user already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors (rejected before anything reaches storage).
	ErrorValidation = errors.New("validation error")
)
