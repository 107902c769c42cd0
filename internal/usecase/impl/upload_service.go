package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path"
	"slices"
	"strings"

	"jobboard/config"
	deliverycontext "jobboard/internal/delivery/context"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"
	"jobboard/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const uploadKeyPrefix = "images"

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage      service.UploadStorage
	maxSizeBytes int64
	allowedTypes []string
	logger       *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.UploadStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	srv := &uploadService{
		storage: params.Storage,
		logger:  params.Logger,
	}
	if cfg := params.Config.Upload; cfg != nil {
		srv.maxSizeBytes = cfg.MaxSizeBytes
		srv.allowedTypes = cfg.AllowedTypes
	}

	return srv
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage checks size and sniffed content type, then stores the file under a random key.
func (srv *uploadService) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	reader := content
	if srv.maxSizeBytes > 0 {
		reader = io.LimitReader(content, srv.maxSizeBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", errors.Wrap(err, "failed to read upload")
	}
	if len(data) == 0 {
		return "", domainerrors.ErrUploadRejected.WithDetails("file is empty")
	}
	if srv.maxSizeBytes > 0 && int64(len(data)) > srv.maxSizeBytes {
		return "", domainerrors.ErrUploadRejected.WithDetails("file exceeds " + util.FormatBytes(srv.maxSizeBytes))
	}

	mtype := mimetype.Detect(data)
	if !srv.isAllowed(mtype) {
		return "", domainerrors.ErrUploadRejected.WithDetails("file type " + mtype.String() + " is not allowed")
	}

	ext := mtype.Extension()
	if ext == "" {
		ext = strings.ToLower(path.Ext(filename))
	}
	key := uploadKeyPrefix + "/" + uuid.NewString() + ext

	url, err := srv.storage.Save(ctx, key, mtype.String(), bytes.NewReader(data))
	if err != nil {
		srv.log(ctx).Error("Failed to store upload", slog.String("key", key), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	srv.log(ctx).Info("File uploaded", slog.String("key", key), slog.String("content_type", mtype.String()), slog.Int("size", len(data)))

	return url, nil
}

func (srv *uploadService) isAllowed(mtype *mimetype.MIME) bool {
	if len(srv.allowedTypes) == 0 {
		return true
	}

	for m := mtype; m != nil; m = m.Parent() {
		if slices.Contains(srv.allowedTypes, m.String()) {
			return true
		}
	}

	return false
}
