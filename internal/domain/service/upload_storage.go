package service

import (
	"context"
	"io"
)

// UploadStorage stores uploaded files and exposes them by public URL.
type UploadStorage interface {
	// Save writes the content under key and returns its public URL.
	Save(ctx context.Context, key, contentType string, content io.Reader) (string, error)

	// URL returns the public URL of key without checking it exists.
	URL(key string) string
}
