package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"offerdeck/internal/logger"
	"offerdeck/models"
)

// offerRepository is the PostgreSQL-backed implementation of
// [OfferRepository]. Every method operates on a single row of the "offers"
// table; there are no multi-row transactions.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type offerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOfferRepository constructs an [OfferRepository] backed by the provided
// database connection and logger.
func NewOfferRepository(db *DB, logger *logger.Logger) OfferRepository {
	logger.Debug().Msg("creating offer repository")
	return &offerRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new offer record and returns the fully populated
// [models.Offer] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The ID is a fresh UUID generated here, so creation never collides and the
// caller cannot influence key material. The INSERT returns all columns via
// a RETURNING clause, so the caller receives the canonical database
// representation of the record.
func (r *offerRepository) Create(ctx context.Context, offer models.Offer) (models.Offer, error) {
	log := logger.FromContext(ctx)

	offer.ID = uuid.NewString()
	row := r.db.QueryRowContext(ctx, createOffer,
		offer.ID, offer.Title, offer.Description,
		offer.OriginalPrice, offer.DiscountedPrice,
		offer.ValidFrom, offer.ValidUntil,
		offer.ImageKey, offer.ImageURL, offer.IsHidden,
	)

	created, err := scanOffer(row)
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.Create").Msg("error: offer insert failed")
		return models.Offer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetByID retrieves a single offer by its identifier.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrOfferNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *offerRepository) GetByID(ctx context.Context, id string) (models.Offer, error) {
	log := logger.FromContext(ctx)

	offer, err := scanOffer(r.db.QueryRowContext(ctx, getOfferByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Offer{}, ErrOfferNotFound
		}
		log.Err(err).Str("func", "*offerRepository.GetByID").Msg("error: offer lookup failed")
		return models.Offer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return offer, nil
}

// Update replaces all mutable fields of the offer identified by offer.ID
// and bumps updated_at. The UPDATE is built with squirrel and returns the
// persisted row via RETURNING.
//
// Returns [ErrOfferNotFound] when no row matches the ID.
func (r *offerRepository) Update(ctx context.Context, offer models.Offer) (models.Offer, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("offers").
		Set("title", offer.Title).
		Set("description", offer.Description).
		Set("original_price", offer.OriginalPrice).
		Set("discounted_price", offer.DiscountedPrice).
		Set("valid_from", offer.ValidFrom).
		Set("valid_until", offer.ValidUntil).
		Set("image_key", offer.ImageKey).
		Set("image_url", offer.ImageURL).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": offer.ID}).
		Suffix("RETURNING " + offerColumns).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Offer{}, fmt.Errorf("error building update query: %w", err)
	}

	updated, err := scanOffer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Offer{}, ErrOfferNotFound
		}
		log.Err(err).Str("func", "*offerRepository.Update").Msg("error: offer update failed")
		return models.Offer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// Delete removes the offer row. Returns [ErrOfferNotFound] when nothing was
// deleted.
func (r *offerRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteOffer, id)
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.Delete").Msg("error: offer delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrOfferNotFound
	}

	return nil
}

// ToggleVisibility flips is_hidden in a single UPDATE so that concurrent
// toggles cannot interleave a read-then-write. The RETURNING clause hands
// back what was actually persisted.
func (r *offerRepository) ToggleVisibility(ctx context.Context, id string) (models.Offer, error) {
	log := logger.FromContext(ctx)

	offer, err := scanOffer(r.db.QueryRowContext(ctx, toggleOfferVisibility, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Offer{}, ErrOfferNotFound
		}
		log.Err(err).Str("func", "*offerRepository.ToggleVisibility").Msg("error: visibility toggle failed")
		return models.Offer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return offer, nil
}

// ListAll returns every offer ordered newest first.
func (r *offerRepository) ListAll(ctx context.Context) ([]models.Offer, error) {
	return r.queryOffers(ctx, "*offerRepository.ListAll", listAllOffers)
}

// ListPublic returns offers active at the given instant, newest first. The
// activity predicate lives in the WHERE clause so the projection is always
// computed against current data — nothing is ever stored.
func (r *offerRepository) ListPublic(ctx context.Context, now time.Time) ([]models.Offer, error) {
	return r.queryOffers(ctx, "*offerRepository.ListPublic", listPublicOffers, now)
}

// Count returns the total number of offers.
func (r *offerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countOffers).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	return count, nil
}

// CountActive returns the number of offers active at the given instant.
func (r *offerRepository) CountActive(ctx context.Context, now time.Time) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countActiveOffers, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	return count, nil
}

func (r *offerRepository) queryOffers(ctx context.Context, caller, query string, args ...any) ([]models.Offer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error: offers query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	offers := make([]models.Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			log.Err(err).Str("func", caller).Msg("error: scanning error")
			return nil, err
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return offers, nil
}

// rowScanner is the subset of *sql.Row and *sql.Rows used by scanOffer.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOffer(row rowScanner) (models.Offer, error) {
	var offer models.Offer
	err := row.Scan(
		&offer.ID, &offer.Title, &offer.Description,
		&offer.OriginalPrice, &offer.DiscountedPrice,
		&offer.ValidFrom, &offer.ValidUntil,
		&offer.ImageKey, &offer.ImageURL, &offer.IsHidden,
		&offer.CreatedAt, &offer.UpdatedAt,
	)
	return offer, err
}
