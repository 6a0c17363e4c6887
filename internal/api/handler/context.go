package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localbiz/directory-api/internal/api/middleware"
	"github.com/localbiz/directory-api/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware. The
// presence of a user id proves the middleware ran; handlers pass the value
// explicitly into service calls rather than letting services read the
// request context.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ := c.Get(middleware.CtxRole).(string)
	return ports.Identity{UserID: userID, Role: role}, nil
}
