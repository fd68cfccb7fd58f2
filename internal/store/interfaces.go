package store

import (
	"context"
	"time"

	"offerdeck/models"
)

// OfferRepository owns offer records and the queries behind the
// visibility/validity projection. Every mutation touches exactly one row, so
// the store's native per-row atomicity is all the concurrency control the
// repository needs.
type OfferRepository interface {
	// Create persists a new offer and returns the canonical stored record
	// with server-assigned ID and timestamps.
	Create(ctx context.Context, offer models.Offer) (models.Offer, error)

	// GetByID returns the offer with the given ID or ErrOfferNotFound.
	GetByID(ctx context.Context, id string) (models.Offer, error)

	// Update replaces every mutable field of the offer and bumps UpdatedAt.
	// Returns the persisted record or ErrOfferNotFound.
	Update(ctx context.Context, offer models.Offer) (models.Offer, error)

	// Delete removes the offer or returns ErrOfferNotFound.
	Delete(ctx context.Context, id string) error

	// ToggleVisibility flips IsHidden in a single atomic statement and
	// returns the state that was actually persisted, never a client-side
	// guess. Returns ErrOfferNotFound for an unknown ID.
	ToggleVisibility(ctx context.Context, id string) (models.Offer, error)

	// ListAll returns every offer, newest first, including hidden and
	// expired ones. Administrator view.
	ListAll(ctx context.Context) ([]models.Offer, error)

	// ListPublic returns offers that are active at the given instant —
	// inside their validity window and not hidden — newest first.
	ListPublic(ctx context.Context, now time.Time) ([]models.Offer, error)

	// Count returns the total number of offers.
	Count(ctx context.Context) (int, error)

	// CountActive returns the number of offers active at the given instant.
	CountActive(ctx context.Context, now time.Time) (int, error)
}

// AdminRepository owns administrator identities. Records are immutable once
// created and only ever written by the out-of-band seeding step.
type AdminRepository interface {
	// Create persists a new administrator. Returns ErrEmailAlreadyExists
	// when the email is taken.
	Create(ctx context.Context, admin models.Admin) (models.Admin, error)

	// FindByEmail looks an administrator up by email, case-insensitively.
	// Returns ErrAdminNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (models.Admin, error)

	// Count returns the number of administrator accounts.
	Count(ctx context.Context) (int, error)
}
