package service

import (
	"offerdeck/internal/config"
	"offerdeck/internal/logger"
	"offerdeck/internal/store"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService   AuthService
	OfferService  OfferService
	UploadService UploadService
}

// NewServices wires all services to the given repositories and blob store.
func NewServices(repos *store.Repositories, blobStore BlobStore, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(repos.AdminRepository, cfg.App, logger),
		OfferService:  NewOfferService(repos.OfferRepository, blobStore, logger),
		UploadService: NewUploadService(blobStore, cfg.Blob, logger),
	}
}
