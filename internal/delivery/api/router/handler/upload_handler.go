package handler

import (
	"log/slog"
	"net/http"

	"jobboard/internal/delivery/api/response"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// uploadFormField is the multipart field carrying the file.
const uploadFormField = "picture"

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler serves file uploads.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// UploadResponse carries the public URL of the stored file.
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadFile stores the multipart "picture" file and returns its URL.
func (h *UploadHandler) UploadFile(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrUploadRejected.WithDetails("multipart field \""+uploadFormField+"\" is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrUploadRejected.WithDetails("file cannot be read"))
	}
	defer file.Close()

	url, err := h.uploadUC.UploadImage(c.Request().Context(), fileHeader.Filename, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, UploadResponse{URL: url})
}
