package store

import "offerdeck/internal/logger"

// Repositories bundles every repository backed by the shared database
// handle. Constructed once at startup and handed to the service layer.
type Repositories struct {
	OfferRepository OfferRepository
	AdminRepository AdminRepository
}

// NewRepositories constructs all repositories over the given database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		OfferRepository: NewOfferRepository(db, logger),
		AdminRepository: NewAdminRepository(db, logger),
	}
}
