package service

import (
	"context"
	"time"

	"offerdeck/models"
)

// AuthService authenticates administrators and manages the session token
// lifecycle.
type AuthService interface {
	// Login verifies the email/password pair against the credential store.
	// Unknown email and wrong password collapse to the same
	// ErrInvalidCredentials so the response cannot be used as an account
	// oracle.
	Login(ctx context.Context, email, password string) (models.Admin, error)

	// CreateToken issues a signed session token for the administrator.
	CreateToken(ctx context.Context, admin models.Admin) (models.Token, error)

	// ParseToken verifies a raw token string. Every failure — malformed,
	// tampered, expired, wrong issuer — collapses to the single
	// ErrTokenInvalid; callers cannot distinguish why a token was rejected.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// OfferService owns the offer lifecycle: validation, persistence, the
// visibility toggle, and the public projection. Create and Update are the
// commit step of the publication pipeline — they run only after the caller
// has completed (or skipped) the image transfer.
type OfferService interface {
	Create(ctx context.Context, input models.OfferInput) (models.Offer, error)
	Get(ctx context.Context, id string) (models.Offer, error)
	Update(ctx context.Context, id string, input models.OfferInput) (models.Offer, error)

	// Delete removes the offer and best-effort deletes its image blob.
	// A blob store failure is logged and swallowed; the operation fails
	// only when the database deletion fails.
	Delete(ctx context.Context, id string) error

	ToggleVisibility(ctx context.Context, id string) (models.Offer, error)
	ListAll(ctx context.Context) ([]models.Offer, error)

	// ListPublic returns the offers an unauthenticated caller may see:
	// inside their validity window and not hidden, newest first.
	ListPublic(ctx context.Context) ([]models.Offer, error)
}

// UploadService mints upload grants for offer images. It never sees file
// bytes and never touches offer records.
type UploadService interface {
	// RequestUploadGrant validates the declared MIME type (image/* only),
	// derives a collision-free object key independent of the file name, and
	// returns a presigned single-object write grant plus the public URL the
	// object will be served from.
	RequestUploadGrant(ctx context.Context, fileName, fileType string) (models.UploadGrant, error)

	// DeleteObject best-effort removes an object from the blob store.
	DeleteObject(ctx context.Context, key string) error
}

// BlobStore is the capability surface this package needs from the object
// store adapter (see internal/blob).
type BlobStore interface {
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	DeleteObject(ctx context.Context, key string) error
}
