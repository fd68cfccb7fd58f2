package models

import (
	"errors"
	"time"
	"unicode/utf8"
)

// Field-level limits enforced on every offer write. Limits are measured in
// characters, not bytes.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// Validation errors returned by [Offer.Validate]. Callers can match them
// with [errors.Is] to translate invariant violations into API responses.
var (
	// ErrTitleRequired is returned when the offer title is empty or longer
	// than MaxTitleLength characters.
	ErrTitleRequired = errors.New("title is required and must be at most 200 characters")

	// ErrDescriptionRequired is returned when the offer description is empty
	// or longer than MaxDescriptionLength characters.
	ErrDescriptionRequired = errors.New("description is required and must be at most 1000 characters")

	// ErrNegativePrice is returned when either price is below zero.
	ErrNegativePrice = errors.New("prices must be non-negative")

	// ErrDiscountNotBelowOriginal is returned when the discounted price is
	// not strictly less than the original price.
	ErrDiscountNotBelowOriginal = errors.New("discounted price must be less than original price")

	// ErrInvalidValidityWindow is returned when validFrom is not strictly
	// before validUntil.
	ErrInvalidValidityWindow = errors.New("valid from date must be before valid until date")

	// ErrIncompleteImageReference is returned when exactly one of ImageKey
	// and ImageURL is set. The pair is all-or-nothing: a stored object key
	// without a public URL (or the reverse) is unrenderable.
	ErrIncompleteImageReference = errors.New("image key and image url must be provided together")
)

// Offer is a time-bounded promotional record with pricing and an optional
// image stored in the blob store.
//
// An offer is publicly visible only while it is active — see [Offer.IsActive].
// Activity is never persisted; it is recomputed from the validity window and
// the hidden flag at read time, so the public projection stays correct
// without any background sweep.
type Offer struct {
	// ID is the server-assigned unique identifier of the offer.
	ID string `json:"id"`

	// Title is the short headline shown in listings. At most 200 characters.
	Title string `json:"title"`

	// Description is the long-form offer text. At most 1000 characters.
	Description string `json:"description"`

	// OriginalPrice is the pre-discount price. Non-negative.
	OriginalPrice float64 `json:"originalPrice"`

	// DiscountedPrice is the promotional price. Non-negative and strictly
	// less than OriginalPrice; the invariant is enforced on every write.
	DiscountedPrice float64 `json:"discountedPrice"`

	// ValidFrom is the inclusive start of the validity window.
	ValidFrom time.Time `json:"validFrom"`

	// ValidUntil is the inclusive end of the validity window.
	// Always strictly after ValidFrom.
	ValidUntil time.Time `json:"validUntil"`

	// ImageKey is the blob store's opaque object key of the offer image.
	// Empty when the offer has no image. Set if and only if ImageURL is set.
	ImageKey string `json:"imageKey,omitempty"`

	// ImageURL is the public CDN URL derived from ImageKey.
	// Empty when the offer has no image. Set if and only if ImageKey is set.
	ImageURL string `json:"imageUrl,omitempty"`

	// IsHidden is the administrator-controlled visibility flag.
	// Independent of the validity window.
	IsHidden bool `json:"isHidden"`

	// CreatedAt is the creation timestamp. Immutable after creation.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is bumped by the store on every mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Offer model.
func (o Offer) TableName() string {
	return "offers"
}

// Validate checks every write-time invariant of the offer:
// required content fields and their length limits, non-negative prices,
// discounted < original, validFrom < validUntil, and the all-or-nothing
// image reference pair.
//
// It returns the first violated invariant as one of the sentinel errors
// declared in this package, or nil when the offer is well-formed.
// Violations must cause the write to fail; values are never clamped.
func (o Offer) Validate() error {
	if o.Title == "" || utf8.RuneCountInString(o.Title) > MaxTitleLength {
		return ErrTitleRequired
	}
	if o.Description == "" || utf8.RuneCountInString(o.Description) > MaxDescriptionLength {
		return ErrDescriptionRequired
	}
	if o.OriginalPrice < 0 || o.DiscountedPrice < 0 {
		return ErrNegativePrice
	}
	if o.DiscountedPrice >= o.OriginalPrice {
		return ErrDiscountNotBelowOriginal
	}
	if o.ValidFrom.IsZero() || o.ValidUntil.IsZero() || !o.ValidFrom.Before(o.ValidUntil) {
		return ErrInvalidValidityWindow
	}
	if (o.ImageKey == "") != (o.ImageURL == "") {
		return ErrIncompleteImageReference
	}

	return nil
}

// IsActive reports whether the offer is visible to the public at the given
// instant: now must fall inside [ValidFrom, ValidUntil] (inclusive on both
// ends) and the offer must not be hidden.
func (o Offer) IsActive(now time.Time) bool {
	if o.IsHidden {
		return false
	}
	return !now.Before(o.ValidFrom) && !now.After(o.ValidUntil)
}
