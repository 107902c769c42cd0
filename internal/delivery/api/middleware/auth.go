// Package middleware contains API-specific echo middleware.
package middleware

import (
	"log/slog"
	"strings"

	"jobboard/internal/delivery/api/response"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware authenticates bearer session tokens and authorizes by account kind.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// Authenticate decodes the bearer session token into the request identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateSessionToken(strings.TrimSpace(tokenString))
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return response.HandleAppError(c, domainerrors.ErrSessionTokenExpired)
			}

			return response.HandleAppError(c, domainerrors.ErrSessionTokenInvalid)
		}

		identity := &deliverycontext.Identity{
			ID:    claims.AccountID,
			Name:  claims.Name,
			Email: claims.Email,
			Role:  claims.Role,
			Kind:  claims.Kind,
		}
		deliverycontext.SetIdentity(c, identity)

		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
		deliverycontext.SetLogger(c, logger.With(slog.String("account_id", identity.ID.String())))

		return next(c)
	}
}

// RequireKind only lets callers of the given account kind through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireKind(kind entity.AccountKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return response.Unauthorized(c, "CONTEXT_ERROR", "Identity not found in context")
			}
			if identity.Kind != kind {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: requires a "+kind.String()+" account")
			}

			return next(c)
		}
	}
}

// GetIdentity returns the caller set by Authenticate.
func GetIdentity(c echo.Context) (*deliverycontext.Identity, bool) {
	return deliverycontext.GetIdentity(c)
}

// GetUserID returns the caller's account ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}

	return identity.ID, true
}
