// Command seed bootstraps the database with the default administrator
// account and, optionally, a handful of sample offers. It is idempotent:
// running it against an already seeded database changes nothing.
package main

import (
	"context"
	"flag"
	"time"

	"golang.org/x/crypto/bcrypt"

	"offerdeck/internal/config"
	"offerdeck/internal/logger"
	"offerdeck/internal/store"
	"offerdeck/models"
)

const (
	defaultAdminEmail    = "admin@offers-system.com"
	defaultAdminName     = "Administrator"
	defaultAdminPassword = "admin123"
)

func main() {
	// registered before the config loader runs the single flag.Parse, so
	// -sample-offers composes with every shared config flag
	sampleOffers := flag.Bool("sample-offers", false, "also insert three sample offers")

	log := logger.NewLogger("offerdeck-seed")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	if err = seedAdmin(ctx, repositories.AdminRepository, log); err != nil {
		log.Fatal().Err(err).Msg("error seeding administrator")
	}

	if *sampleOffers {
		if err = seedOffers(ctx, repositories.OfferRepository, log); err != nil {
			log.Fatal().Err(err).Msg("error seeding offers")
		}
	}

	printStats(ctx, repositories, log)
}

// seedAdmin creates the default administrator unless one already exists.
func seedAdmin(ctx context.Context, admins store.AdminRepository, log *logger.Logger) error {
	count, err := admins.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info().Int("admins", count).Msg("administrator already present, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin, err := admins.Create(ctx, models.Admin{
		Email:        defaultAdminEmail,
		Name:         defaultAdminName,
		PasswordHash: string(hash),
	})
	if err != nil {
		return err
	}

	log.Info().Str("email", admin.Email).Msg("default administrator created")
	return nil
}

// seedOffers inserts three demo offers unless any offers already exist.
func seedOffers(ctx context.Context, offers store.OfferRepository, log *logger.Logger) error {
	count, err := offers.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info().Int("offers", count).Msg("offers already present, skipping")
		return nil
	}

	now := time.Now().UTC()
	samples := []models.Offer{
		{
			Title:           "Summer Sale",
			Description:     "Seasonal discount on the whole catalogue.",
			OriginalPrice:   99.99,
			DiscountedPrice: 59.99,
			ValidFrom:       now,
			ValidUntil:      now.AddDate(0, 1, 0),
		},
		{
			Title:           "New Customer Welcome",
			Description:     "First purchase discount for new customers.",
			OriginalPrice:   49.99,
			DiscountedPrice: 29.99,
			ValidFrom:       now,
			ValidUntil:      now.AddDate(0, 3, 0),
		},
		{
			Title:           "Weekend Flash Deal",
			Description:     "Limited weekend offer, while stock lasts.",
			OriginalPrice:   199.99,
			DiscountedPrice: 149.99,
			ValidFrom:       now,
			ValidUntil:      now.AddDate(0, 0, 3),
		},
	}

	for _, sample := range samples {
		offer, err := offers.Create(ctx, sample)
		if err != nil {
			return err
		}
		log.Info().Str("id", offer.ID).Str("title", offer.Title).Msg("sample offer created")
	}

	return nil
}

func printStats(ctx context.Context, repositories *store.Repositories, log *logger.Logger) {
	admins, err := repositories.AdminRepository.Count(ctx)
	if err != nil {
		log.Err(err).Msg("error counting administrators")
		return
	}

	total, err := repositories.OfferRepository.Count(ctx)
	if err != nil {
		log.Err(err).Msg("error counting offers")
		return
	}

	active, err := repositories.OfferRepository.CountActive(ctx, time.Now().UTC())
	if err != nil {
		log.Err(err).Msg("error counting active offers")
		return
	}

	log.Info().Int("admins", admins).Int("offers", total).Int("active", active).Msg("database stats")
}
