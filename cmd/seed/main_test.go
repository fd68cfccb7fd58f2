package main

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"offerdeck/internal/logger"
	"offerdeck/internal/mock"
	"offerdeck/models"
)

func TestSeedAdmin_CreatesDefaultAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admins := mock.NewMockAdminRepository(ctrl)
	ctx := context.Background()

	admins.EXPECT().Count(ctx).Return(0, nil)
	admins.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, admin models.Admin) (models.Admin, error) {
			if admin.Email != defaultAdminEmail {
				t.Errorf("expected email %s, got %s", defaultAdminEmail, admin.Email)
			}
			if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(defaultAdminPassword)); err != nil {
				t.Errorf("stored hash does not verify the default password: %v", err)
			}
			admin.ID = "generated-id"
			return admin, nil
		})

	if err := seedAdmin(ctx, admins, logger.Nop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSeedAdmin_SkipsWhenAdminExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admins := mock.NewMockAdminRepository(ctrl)
	ctx := context.Background()

	// no Create expectation: an existing admin means nothing is written
	admins.EXPECT().Count(ctx).Return(1, nil)

	if err := seedAdmin(ctx, admins, logger.Nop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSeedOffers_CreatesSamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	offers := mock.NewMockOfferRepository(ctrl)
	ctx := context.Background()

	offers.EXPECT().Count(ctx).Return(0, nil)
	offers.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, offer models.Offer) (models.Offer, error) {
			if err := offer.Validate(); err != nil {
				t.Errorf("sample offer %q is invalid: %v", offer.Title, err)
			}
			offer.ID = "generated-id"
			return offer, nil
		}).
		Times(3)

	if err := seedOffers(ctx, offers, logger.Nop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSeedOffers_SkipsWhenOffersExist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	offers := mock.NewMockOfferRepository(ctrl)
	ctx := context.Background()

	offers.EXPECT().Count(ctx).Return(2, nil)

	if err := seedOffers(ctx, offers, logger.Nop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
