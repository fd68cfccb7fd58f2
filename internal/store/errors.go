package store

import "errors"

// Sentinel errors returned by the repositories. Callers match them with
// [errors.Is] to translate persistence outcomes into API responses.
var (
	// ErrOfferNotFound is returned when no offer exists with the given ID.
	ErrOfferNotFound = errors.New("offer not found")

	// ErrAdminNotFound is returned when no administrator account matches
	// the lookup.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrEmailAlreadyExists is returned when creating an administrator
	// whose email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
