package context

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Identity is the caller decoded from a session token.
type Identity struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  entity.Role
	Kind  entity.AccountKind
}

// SetIdentity stores the caller in echo.Context and in the request context.
func SetIdentity(c echo.Context, identity *Identity) {
	c.Set(echoIdentityKey, identity)

	ctx := context.WithValue(c.Request().Context(), identityKey, identity)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetIdentity returns the authenticated caller, if any.
func GetIdentity(c echo.Context) (*Identity, bool) {
	identity, ok := c.Get(echoIdentityKey).(*Identity)

	return identity, ok && identity != nil
}

// IdentityFromContext returns the authenticated caller stored in a standard context.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)

	return identity, ok && identity != nil
}
