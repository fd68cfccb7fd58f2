// Package blob talks to the S3-compatible object store offer images live
// in. It only ever mints presigned write capabilities and deletes objects
// by key; image bytes never pass through this process.
package blob

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"offerdeck/internal/config"
	"offerdeck/internal/logger"
)

// Store is the S3-compatible blob store adapter. The underlying client and
// presign client are built once from the injected configuration at process
// start and are safe for concurrent use.
type Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	logger    *logger.Logger
}

// NewStore builds the S3 client for the configured endpoint with static
// credentials (the R2/MinIO style of access) and wraps it in a Store.
func NewStore(ctx context.Context, cfg config.Blob, log *logger.Logger) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("error loading blob store config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
	})

	log.Info().Str("bucket", cfg.Bucket).Msg("blob store client created")

	return &Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		logger:    log,
	}, nil
}

// PresignPut mints a presigned PUT URL scoped to exactly the given object
// key and content type, valid for expires. The grant is write-only: it
// cannot list, read, or touch any other key, and it lapses unused if the
// client never completes the transfer.
func (s *Store) PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("error presigning put for %q: %w", key, err)
	}

	return req.URL, nil
}

// DeleteObject removes the object with the given key. Callers treat
// failures as non-fatal; the offer record, not the blob, is the source of
// truth for deletion.
func (s *Store) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("error deleting object %q: %w", key, err)
	}

	return nil
}
