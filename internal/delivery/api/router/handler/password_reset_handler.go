package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"jobboard/internal/delivery/api/response"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PasswordResetHandlerParams holds dependencies for PasswordResetHandler, injected by Fx.
type PasswordResetHandlerParams struct {
	fx.In

	ResetUC usecase.PasswordResetUsecase
	Logger  *slog.Logger
}

// PasswordResetHandler serves the password reset routes for both account kinds.
type PasswordResetHandler struct {
	resetUC usecase.PasswordResetUsecase
	logger  *slog.Logger
}

// NewPasswordResetHandler is the constructor for PasswordResetHandler.
func NewPasswordResetHandler(params PasswordResetHandlerParams) *PasswordResetHandler {
	return &PasswordResetHandler{
		resetUC: params.ResetUC,
		logger:  params.Logger,
	}
}

// ResetRequest asks for a reset email.
type ResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RedeemRequest carries the new password.
type RedeemRequest struct {
	Password string `json:"password" validate:"required"`
}

// TokenValidityResponse reports whether a reset link can still be used.
type TokenValidityResponse struct {
	Valid bool `json:"valid"`
}

// RequestReset returns the handler that mails a reset link.
func (h *PasswordResetHandler) RequestReset(kind entity.AccountKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ResetRequest
		if err := bind(c, &req); err != nil {
			return response.HandleAppError(c, err)
		}

		if err := h.resetUC.RequestReset(c.Request().Context(), kind, req.Email); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Message(c, http.StatusOK, "Password reset email sent")
	}
}

// Redeem returns the handler that sets a new password with a reset token.
func (h *PasswordResetHandler) Redeem(kind entity.AccountKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := resetToken(c)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		var req RedeemRequest
		if err := bind(c, &req); err != nil {
			return response.HandleAppError(c, err)
		}

		if err := h.resetUC.RedeemReset(c.Request().Context(), kind, token, req.Password); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Message(c, http.StatusOK, "Password updated")
	}
}

// CheckToken returns the handler that reports whether a reset token is still usable.
func (h *PasswordResetHandler) CheckToken(kind entity.AccountKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := resetToken(c)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		valid, err := h.resetUC.CheckTokenValid(c.Request().Context(), kind, token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, TokenValidityResponse{Valid: valid})
	}
}

func resetToken(c echo.Context) (string, error) {
	token, err := url.PathUnescape(c.Param("token"))
	if err != nil || token == "" {
		return "", domainerrors.ErrResetTokenInvalid
	}

	return token, nil
}
