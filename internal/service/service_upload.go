package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"offerdeck/internal/config"
	"offerdeck/internal/logger"
	"offerdeck/models"
)

// Upload-grant parameters. The grant is valid for one hour — long enough
// for a slow client upload, short enough that a leaked URL is of little
// value — and every object key lives under a fixed prefix.
const (
	uploadGrantTTL  = time.Hour
	objectKeyPrefix = "offers/"
)

// uploadService is the concrete implementation of UploadService: the broker
// that mints scoped write capabilities against the blob store. It carries
// no business state and never reads file bytes — the declared content type
// is trusted at grant time and enforced by the signature.
type uploadService struct {
	blobStore  BlobStore
	cdnBaseURL string
	logger     *logger.Logger
}

// NewUploadService constructs an UploadService over the given blob store.
func NewUploadService(blobStore BlobStore, cfg config.Blob, logger *logger.Logger) UploadService {
	return &uploadService{
		blobStore:  blobStore,
		cdnBaseURL: strings.TrimRight(cfg.CDNBaseURL, "/"),
		logger:     logger,
	}
}

// RequestUploadGrant validates the declared MIME type and returns a
// presigned PUT grant for a fresh object key.
//
// The key is derived from a random UUID plus the original file extension —
// never from the file name itself, so a hostile name cannot steer the
// object path. The grant is scoped to exactly that key and content type and
// expires after uploadGrantTTL; if the caller never uploads, it simply
// lapses with no record anywhere.
//
// Returns:
//   - ErrValidation (wrapped) if fileName or fileType is empty.
//   - ErrUnsupportedFileType if the declared type is not image/*.
//   - A wrapped blob store error if presigning fails.
func (s *uploadService) RequestUploadGrant(ctx context.Context, fileName, fileType string) (models.UploadGrant, error) {
	log := logger.FromContext(ctx)

	if fileName == "" || fileType == "" {
		return models.UploadGrant{}, fmt.Errorf("%w: fileName and fileType are required", ErrValidation)
	}

	if !strings.HasPrefix(fileType, "image/") {
		log.Debug().Str("file_type", fileType).Msg("upload grant rejected: unsupported file type")
		return models.UploadGrant{}, ErrUnsupportedFileType
	}

	key := objectKeyPrefix + uuid.NewString() + strings.ToLower(filepath.Ext(fileName))

	signedURL, err := s.blobStore.PresignPut(ctx, key, fileType, uploadGrantTTL)
	if err != nil {
		log.Err(err).Str("key", key).Msg("error presigning upload grant")
		return models.UploadGrant{}, fmt.Errorf("error presigning upload grant: %w", err)
	}

	return models.UploadGrant{
		SignedURL: signedURL,
		ImageKey:  key,
		ImageURL:  s.cdnBaseURL + "/" + key,
	}, nil
}

// DeleteObject removes an object from the blob store. Failures are the
// caller's to tolerate; this method only reports them.
func (s *uploadService) DeleteObject(ctx context.Context, key string) error {
	return s.blobStore.DeleteObject(ctx, key)
}
