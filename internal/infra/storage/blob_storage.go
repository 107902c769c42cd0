// Package storage keeps uploaded files in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"jobboard/config"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selectable through upload.bucketURL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStorage implements service.UploadStorage on a blob bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// StorageParams holds dependencies for UploadStorage, injected by Fx.
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewUploadStorage opens the configured bucket and closes it on shutdown.
func NewUploadStorage(params StorageParams) (service.UploadStorage, error) {
	cfg := params.Config.Upload
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("upload.bucketURL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Upload bucket opened", slog.String("bucket_url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, cfg.PublicBaseURL), nil
}

// NewBlobStorage wraps an open bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.UploadStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Save streams content into the bucket under key.
func (s *blobStorage) Save(ctx context.Context, key, contentType string, content io.Reader) (string, error) {
	if err := s.bucket.Upload(ctx, key, content, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	return s.URL(key), nil
}

// URL joins the public base URL and the escaped key.
func (s *blobStorage) URL(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return s.publicBaseURL + "/" + strings.Join(segments, "/")
}
