package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"jobboard/config"
	domainerrors "jobboard/internal/domain/errors"
	mockSvc "jobboard/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func createTestUploadService(t *testing.T, maxSize int64) (*uploadService, *mockSvc.MockUploadStorage) {
	t.Helper()

	storage := mockSvc.NewMockUploadStorage(t)
	cfg := &config.Config{Upload: &config.UploadConfig{
		MaxSizeBytes: maxSize,
		AllowedTypes: []string{"image/png", "image/jpeg"},
	}}

	svc := NewUploadService(UploadServiceParams{
		Storage: storage,
		Config:  cfg,
		Logger:  newDiscardLogger(),
	})

	return svc.(*uploadService), storage
}

func TestUploadService_UploadImage(t *testing.T) {
	svc, storage := createTestUploadService(t, 1024)
	storage.On("Save", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "images/") && strings.HasSuffix(key, ".png")
	}), "image/png", mock.Anything).Return("https://cdn.example.test/images/x.png", nil).Once()

	url, err := svc.UploadImage(context.Background(), "avatar.PNG", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.test/images/x.png", url)
}

func TestUploadService_UploadImage_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		maxSize int64
	}{
		{name: "empty", content: nil, maxSize: 1024},
		{name: "not an image", content: []byte("just some plain text"), maxSize: 1024},
		{name: "too large", content: append(append([]byte{}, pngHeader...), make([]byte, 64)...), maxSize: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, storage := createTestUploadService(t, tt.maxSize)

			_, err := svc.UploadImage(context.Background(), "file.png", bytes.NewReader(tt.content))
			assert.True(t, errors.Is(err, domainerrors.ErrUploadRejected))
			storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUploadService_UploadImage_StorageFailure(t *testing.T) {
	svc, storage := createTestUploadService(t, 1024)
	storage.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket unavailable"))

	_, err := svc.UploadImage(context.Background(), "avatar.png", bytes.NewReader(pngHeader))
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}
