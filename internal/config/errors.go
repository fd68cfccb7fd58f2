package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token signing key or issuer).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidBlobConfigs indicates incomplete blob store settings
	// (endpoint, credentials, bucket, or CDN base URL missing).
	ErrInvalidBlobConfigs = errors.New("invalid blob store configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (missing listen address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
