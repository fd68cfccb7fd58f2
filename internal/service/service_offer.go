package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"offerdeck/internal/logger"
	"offerdeck/internal/store"
	"offerdeck/models"
)

// offerService is the concrete implementation of OfferService.
//
// It is the commit side of the publication pipeline: inputs are fully
// validated before any store call, so an invalid create or update never
// touches the database. The blob store is involved only on deletion, and
// only best-effort.
type offerService struct {
	offerRepository store.OfferRepository
	blobStore       BlobStore
	logger          *logger.Logger

	// now is the clock used for the public projection. Overridable in tests.
	now func() time.Time
}

// NewOfferService constructs an OfferService over the given repository and
// blob store.
func NewOfferService(offerRepository store.OfferRepository, blobStore BlobStore, logger *logger.Logger) OfferService {
	return &offerService{
		offerRepository: offerRepository,
		blobStore:       blobStore,
		logger:          logger,
		now:             time.Now,
	}
}

// Create validates the input and persists a new offer.
//
// New offers are always created visible; a client-supplied hidden flag is
// ignored. Returns a wrapped ErrValidation without any store call when an
// invariant is violated.
func (s *offerService) Create(ctx context.Context, input models.OfferInput) (models.Offer, error) {
	offer, err := offerFromInput(input)
	if err != nil {
		return models.Offer{}, err
	}

	created, err := s.offerRepository.Create(ctx, offer)
	if err != nil {
		return models.Offer{}, fmt.Errorf("offer creation failed: %w", err)
	}

	return created, nil
}

// Get returns a single offer by ID.
func (s *offerService) Get(ctx context.Context, id string) (models.Offer, error) {
	return s.offerRepository.GetByID(ctx, id)
}

// Update validates the input and replaces every mutable field of the offer.
// Like Create, validation failures never reach the store.
func (s *offerService) Update(ctx context.Context, id string, input models.OfferInput) (models.Offer, error) {
	offer, err := offerFromInput(input)
	if err != nil {
		return models.Offer{}, err
	}
	offer.ID = id

	updated, err := s.offerRepository.Update(ctx, offer)
	if err != nil {
		return models.Offer{}, err
	}

	return updated, nil
}

// Delete removes the offer from the catalog.
//
// When the offer references an image, the blob is deleted first,
// best-effort: a blob store failure is logged and the deletion proceeds.
// The user-facing guarantee is "the offer is gone", not "the blob is gone" —
// a stray unreferenced object is operationally cleanable, a dangling
// catalog entry is not.
func (s *offerService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	offer, err := s.offerRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if offer.ImageKey != "" {
		if err := s.blobStore.DeleteObject(ctx, offer.ImageKey); err != nil {
			log.Warn().Err(err).Str("image_key", offer.ImageKey).Msg("image blob deletion failed, continuing with offer deletion")
		}
	}

	return s.offerRepository.Delete(ctx, id)
}

// ToggleVisibility flips the hidden flag and returns the persisted state.
func (s *offerService) ToggleVisibility(ctx context.Context, id string) (models.Offer, error) {
	return s.offerRepository.ToggleVisibility(ctx, id)
}

// ListAll returns every offer for the administrator view, newest first.
func (s *offerService) ListAll(ctx context.Context) ([]models.Offer, error) {
	return s.offerRepository.ListAll(ctx)
}

// ListPublic returns the offers active right now, newest first. Activity is
// evaluated against the current clock on every call; nothing is cached or
// stored.
func (s *offerService) ListPublic(ctx context.Context) ([]models.Offer, error) {
	return s.offerRepository.ListPublic(ctx, s.now())
}

// offerFromInput parses and validates an offer write request. Title and
// description are trimmed of surrounding whitespace before validation, so a
// whitespace-only value fails as empty. It returns a wrapped ErrValidation
// naming the violated invariant, or the ready-to-store offer. New offers
// start visible; the hidden flag is owned by the toggle operation.
func offerFromInput(input models.OfferInput) (models.Offer, error) {
	validFrom, err := time.Parse(time.RFC3339, input.ValidFrom)
	if err != nil {
		return models.Offer{}, fmt.Errorf("%w: %w", ErrValidation, models.ErrInvalidValidityWindow)
	}
	validUntil, err := time.Parse(time.RFC3339, input.ValidUntil)
	if err != nil {
		return models.Offer{}, fmt.Errorf("%w: %w", ErrValidation, models.ErrInvalidValidityWindow)
	}

	offer := models.Offer{
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		OriginalPrice:   input.OriginalPrice,
		DiscountedPrice: input.DiscountedPrice,
		ValidFrom:       validFrom,
		ValidUntil:      validUntil,
		ImageKey:        input.ImageKey,
		ImageURL:        input.ImageURL,
		IsHidden:        false,
	}

	if err := offer.Validate(); err != nil {
		return models.Offer{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return offer, nil
}
