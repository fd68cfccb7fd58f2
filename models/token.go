package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the claim set carried by every session token:
// the standard registered claims (sub = admin ID, iat, exp, iss) plus the
// administrator's email and display name so that /api/auth/me can answer
// without a database round trip.
//
// The token is pure bearer state — nothing is persisted server-side, and a
// token is invalidated only by expiry or signature mismatch.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Email is the administrator's login email.
	Email string `json:"email"`

	// Name is the administrator's display name.
	Name string `json:"name"`
}

// Token wraps a signed session JWT together with its parsed claims.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be set as the session cookie.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the verified claim set of the token. Populated on issue and
	// after successful verification; never trusted before verification.
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// AdminID returns the administrator identifier carried in the token's
// "sub" claim.
func (t *Token) AdminID() string {
	return t.Claims.Subject
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
