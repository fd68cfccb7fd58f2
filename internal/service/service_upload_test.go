package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"offerdeck/internal/config"
	"offerdeck/internal/logger"
	"offerdeck/internal/mock"
)

var objectKeyPattern = regexp.MustCompile(`^offers/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.png$`)

func newTestUploadService(t *testing.T, ctrl *gomock.Controller) (UploadService, *mock.MockBlobStore) {
	t.Helper()
	blobStore := mock.NewMockBlobStore(ctrl)
	svc := NewUploadService(blobStore, config.Blob{CDNBaseURL: "https://cdn.example.com"}, logger.Nop())
	return svc, blobStore
}

func TestUploadService_RequestUploadGrant_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, blobStore := newTestUploadService(t, ctrl)
	ctx := context.Background()

	var presignedKey string
	blobStore.EXPECT().
		PresignPut(ctx, gomock.Any(), "image/png", time.Hour).
		DoAndReturn(func(_ context.Context, key, _ string, _ time.Duration) (string, error) {
			presignedKey = key
			return "https://blob.example.com/presigned?sig=abc", nil
		})

	grant, err := svc.RequestUploadGrant(ctx, "photo.PNG", "image/png")
	require.NoError(t, err)

	assert.Equal(t, "https://blob.example.com/presigned?sig=abc", grant.SignedURL)
	assert.Equal(t, presignedKey, grant.ImageKey, "grant must reference the presigned key")
	assert.Regexp(t, objectKeyPattern, grant.ImageKey)
	assert.Equal(t, "https://cdn.example.com/"+grant.ImageKey, grant.ImageURL)
}

// The object key is derived from a fresh UUID, never from the file name.
func TestUploadService_RequestUploadGrant_KeyIndependentOfFileName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, blobStore := newTestUploadService(t, ctrl)
	ctx := context.Background()

	blobStore.EXPECT().
		PresignPut(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://blob.example.com/presigned", nil)

	grant, err := svc.RequestUploadGrant(ctx, "../../../etc/passwd.png", "image/png")
	require.NoError(t, err)
	assert.Regexp(t, objectKeyPattern, grant.ImageKey)
	assert.NotContains(t, grant.ImageKey, "passwd")
	assert.NotContains(t, grant.ImageKey, "..")
}

func TestUploadService_RequestUploadGrant_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no blob store expectations: validation rejects before any presign call
	svc, _ := newTestUploadService(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name     string
		fileName string
		fileType string
	}{
		{"empty file name", "", "image/png"},
		{"empty file type", "photo.png", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RequestUploadGrant(ctx, tt.fileName, tt.fileType)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUploadService_RequestUploadGrant_NonImageRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUploadService(t, ctrl)
	ctx := context.Background()

	tests := []string{"application/pdf", "text/html", "video/mp4", "imagery/png"}

	for _, fileType := range tests {
		t.Run(fileType, func(t *testing.T) {
			_, err := svc.RequestUploadGrant(ctx, "file.bin", fileType)
			assert.ErrorIs(t, err, ErrUnsupportedFileType)
		})
	}
}

func TestUploadService_RequestUploadGrant_PresignError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, blobStore := newTestUploadService(t, ctrl)
	ctx := context.Background()

	presignErr := errors.New("bucket unreachable")
	blobStore.EXPECT().
		PresignPut(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", presignErr)

	_, err := svc.RequestUploadGrant(ctx, "photo.png", "image/png")
	require.Error(t, err)
	assert.ErrorIs(t, err, presignErr)
}

func TestUploadService_DeleteObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, blobStore := newTestUploadService(t, ctrl)
	ctx := context.Background()

	blobStore.EXPECT().DeleteObject(ctx, "offers/abc.png").Return(nil)

	require.NoError(t, svc.DeleteObject(ctx, "offers/abc.png"))
}
