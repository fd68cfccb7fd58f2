// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// ErrNoSessionCookie is returned internally by the session gate when the
// request carries no session cookie at all. Like every other verification
// failure it surfaces to the caller only as the generic authentication
// error.
var ErrNoSessionCookie = errors.New("no session cookie")

// Caller-facing error messages. Authentication failures share a single
// generic message so a response never reveals which check rejected the
// request.
const (
	msgAuthenticationRequired = "Authentication required"
	msgInvalidCredentials     = "Invalid credentials"
	msgInvalidJSON            = "Invalid JSON was passed"
	msgInternalError          = "Internal server error"
)
