package usecase

import (
	"context"
	"io"
)

// UploadUsecase stores user-supplied images.
type UploadUsecase interface {
	// UploadImage stores the content and returns its public URL.
	UploadImage(ctx context.Context, filename string, content io.Reader) (string, error)
}
