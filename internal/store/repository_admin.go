package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"offerdeck/internal/logger"
	"offerdeck/models"
)

// adminRepository is the PostgreSQL-backed implementation of
// [AdminRepository]. It handles administrator account creation and lookup
// against the "admins" table.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by the provided
// database connection and logger.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new administrator record and returns the fully
// populated [models.Admin] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *adminRepository) Create(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	admin.ID = uuid.NewString()
	row := r.db.QueryRowContext(ctx, createAdmin, admin.ID, admin.Email, admin.Name, admin.PasswordHash)

	var created models.Admin
	if err := row.Scan(&created.ID, &created.Email, &created.Name, &created.PasswordHash, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*adminRepository.Create").Msg("error: admin insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Admin{}, ErrEmailAlreadyExists
		default:
			return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindByEmail retrieves an administrator whose email matches the given one,
// case-insensitively (the lookup lowercases both sides).
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrAdminNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *adminRepository) FindByEmail(ctx context.Context, email string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	var admin models.Admin
	row := r.db.QueryRowContext(ctx, findAdminByEmail, email)
	if err := row.Scan(&admin.ID, &admin.Email, &admin.Name, &admin.PasswordHash, &admin.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}
		log.Err(err).Str("func", "*adminRepository.FindByEmail").Msg("error: admin lookup failed")
		return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return admin, nil
}

// Count returns the number of administrator accounts.
func (r *adminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countAdmins).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	return count, nil
}
