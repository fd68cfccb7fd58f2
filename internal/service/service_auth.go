package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"offerdeck/internal/config"
	"offerdeck/internal/logger"
	"offerdeck/internal/store"
	"offerdeck/internal/utils"
	"offerdeck/models"
)

// authService is the concrete implementation of AuthService.
// It verifies administrator credentials with bcrypt and handles the session
// JWT lifecycle using the process-wide signing secret injected at
// construction time.
type authService struct {
	// adminRepository is the data-access layer used to look up accounts.
	adminRepository store.AdminRepository

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// AdminRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(adminRepository store.AdminRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminRepository: adminRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// Login authenticates an administrator.
//
// The email is compared case-insensitively. Both an unknown email and a
// wrong password return ErrInvalidCredentials; a caller observing the
// response cannot tell which check failed.
//
// Returns:
//   - ErrValidation (wrapped) if email or password is empty.
//   - ErrInvalidCredentials on unknown email or password mismatch.
//   - A wrapped storage error on repository failure.
func (a *authService) Login(ctx context.Context, email, password string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.Admin{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	admin, err := a.adminRepository.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			log.Debug().Str("email", email).Msg("login attempt for unknown email")
			return models.Admin{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("admin lookup failed")
		return models.Admin{}, fmt.Errorf("admin lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("email", admin.Email).Msg("login attempt with wrong password")
		return models.Admin{}, ErrInvalidCredentials
	}

	return admin, nil
}

// CreateToken issues a signed session JWT for the given administrator.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, admin models.Admin) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, admin, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseSessionToken, verifying the
// signature, issuer, and expiry. Every failure is normalised to the single
// ErrTokenInvalid so that callers cannot distinguish an expired token from
// a tampered or malformed one. The underlying reason is logged at debug
// level for operational diagnosis; the raw token never is.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}
