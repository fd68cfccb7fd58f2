package service

import "errors"

// Sentinel errors returned by the services. Handlers match them with
// [errors.Is] to choose response status codes.
var (
	// ErrValidation marks any bad-input failure: missing fields, malformed
	// dates, or a violated offer invariant. Always wrapped around the
	// specific cause; the cause message is caller-safe.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned by Login for both unknown email and
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid is the single outcome of every failed token
	// verification. The reason (expired, tampered, malformed) is logged
	// server-side and never surfaced to the caller.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrUnsupportedFileType is returned by RequestUploadGrant when the
	// declared MIME type is not an image type.
	ErrUnsupportedFileType = errors.New("only image files are allowed")

	// ErrTokenCreationFailed indicates the signing step itself failed —
	// a process misconfiguration, not a per-request condition.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
