package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hammondstays/hotels-api/internal/core/domain"
)

// RBAC enforces role-based access control on top of the Session middleware.
// The caller needs at least one of the allowed roles.
func RBAC(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(CtxRoles).(domain.RoleSet)
			if !roles.HasAny(allowed...) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
