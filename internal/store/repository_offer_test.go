package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"offerdeck/internal/logger"
	"offerdeck/models"
)

var offerColumnNames = []string{
	"id", "title", "description", "original_price", "discounted_price",
	"valid_from", "valid_until", "image_key", "image_url", "is_hidden",
	"created_at", "updated_at",
}

func newTestOfferRepo(t *testing.T) (*offerRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &offerRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func offerRow(id string, hidden bool, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(offerColumnNames).
		AddRow(id, "Summer Sale", "Seasonal discount.", 100.0, 60.0,
			now, now.AddDate(0, 1, 0), "", "", hidden, now, now)
}

func TestCreateOffer_Success(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	offer := models.Offer{
		Title:           "Summer Sale",
		Description:     "Seasonal discount.",
		OriginalPrice:   100,
		DiscountedPrice: 60,
		ValidFrom:       now,
		ValidUntil:      now.AddDate(0, 1, 0),
	}

	mock.ExpectQuery("INSERT INTO offers").
		WithArgs(sqlmock.AnyArg(), offer.Title, offer.Description,
			offer.OriginalPrice, offer.DiscountedPrice,
			offer.ValidFrom, offer.ValidUntil,
			"", "", false).
		WillReturnRows(offerRow("generated-id", false, now))

	created, err := repo.Create(ctx, offer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "generated-id" {
		t.Errorf("expected ID generated-id, got %s", created.ID)
	}
	if created.Title != offer.Title {
		t.Errorf("expected title %s, got %s", offer.Title, created.Title)
	}
}

func TestCreateOffer_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO offers").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(context.Background(), models.Offer{Title: "x"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestGetOfferByID_Success(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM offers").
		WithArgs("offer-id").
		WillReturnRows(offerRow("offer-id", false, now))

	offer, err := repo.GetByID(context.Background(), "offer-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer.ID != "offer-id" {
		t.Errorf("expected ID offer-id, got %s", offer.ID)
	}
}

func TestGetOfferByID_NotFound(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM offers").
		WithArgs("missing-id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing-id")
	if !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

func TestUpdateOffer_Success(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	now := time.Now()
	offer := models.Offer{
		ID:              "offer-id",
		Title:           "Updated Sale",
		Description:     "Updated description.",
		OriginalPrice:   120,
		DiscountedPrice: 80,
		ValidFrom:       now,
		ValidUntil:      now.AddDate(0, 2, 0),
	}

	// the UPDATE must not touch is_hidden
	mock.ExpectQuery(`UPDATE offers SET title = \$1, description = \$2, original_price = \$3, discounted_price = \$4, valid_from = \$5, valid_until = \$6, image_key = \$7, image_url = \$8, updated_at = now\(\) WHERE id = \$9 RETURNING`).
		WithArgs(offer.Title, offer.Description, offer.OriginalPrice, offer.DiscountedPrice,
			offer.ValidFrom, offer.ValidUntil, "", "", offer.ID).
		WillReturnRows(offerRow("offer-id", true, now))

	updated, err := repo.Update(context.Background(), offer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.IsHidden {
		t.Error("expected hidden state from the database to be returned untouched")
	}
}

func TestUpdateOffer_NotFound(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE offers").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), models.Offer{ID: "missing-id"})
	if !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

func TestDeleteOffer_Success(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM offers").
		WithArgs("offer-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "offer-id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteOffer_NotFound(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM offers").
		WithArgs("missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing-id")
	if !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

func TestToggleOfferVisibility_Success(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`UPDATE offers SET is_hidden = NOT is_hidden`).
		WithArgs("offer-id").
		WillReturnRows(offerRow("offer-id", true, now))

	offer, err := repo.ToggleVisibility(context.Background(), "offer-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !offer.IsHidden {
		t.Error("expected persisted hidden state to be returned")
	}
}

func TestToggleOfferVisibility_NotFound(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE offers SET is_hidden = NOT is_hidden`).
		WithArgs("missing-id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ToggleVisibility(context.Background(), "missing-id")
	if !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

func TestListPublicOffers_FiltersByInstant(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	now := time.Now()
	rows := offerRow("active-id", false, now.Add(-time.Hour))

	mock.ExpectQuery(`WHERE is_hidden = FALSE AND valid_from <= \$1 AND valid_until >= \$1`).
		WithArgs(now).
		WillReturnRows(rows)

	offers, err := repo.ListPublic(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 1 || offers[0].ID != "active-id" {
		t.Errorf("unexpected result: %+v", offers)
	}
}

func TestListPublicOffers_Empty(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	mock.ExpectQuery(`WHERE is_hidden = FALSE`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(offerColumnNames))

	offers, err := repo.ListPublic(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offers == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(offers) != 0 {
		t.Errorf("expected no offers, got %d", len(offers))
	}
}

func TestListAllOffers_Success(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(offerColumnNames).
		AddRow("newer-id", "Newer", "d", 100.0, 60.0, now, now.AddDate(0, 1, 0), "", "", true, now, now).
		AddRow("older-id", "Older", "d", 100.0, 60.0, now, now.AddDate(0, 1, 0), "", "", false, now.Add(-time.Hour), now)

	mock.ExpectQuery(`SELECT (.+) FROM offers ORDER BY created_at DESC`).
		WillReturnRows(rows)

	offers, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(offers))
	}
	if offers[0].ID != "newer-id" {
		t.Errorf("expected newest offer first, got %s", offers[0].ID)
	}
}

func TestCountOffers(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM offers`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 {
		t.Errorf("expected 7, got %d", count)
	}
}

func TestCountActiveOffers(t *testing.T) {
	repo, mock, db := newTestOfferRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT count\(\*\)`).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountActive(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3, got %d", count)
	}
}
