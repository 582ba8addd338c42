package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hammondstays/hotels-api/internal/core/domain"
	"github.com/hammondstays/hotels-api/internal/core/ports"
)

// SessionCookieName is the cookie carrying the opaque session id.
const SessionCookieName = "hotel_session"

// Context keys populated by the Session middleware.
const (
	CtxSessionID = "session_id"
	CtxUserID    = "user_id"
	CtxUsername  = "username"
	CtxRoles     = "roles"
)

// Session resolves the session cookie against the store and injects the
// caller identity into the echo context. With required set, a missing or
// expired session short-circuits with 401 before the handler runs.
func Session(store ports.SessionStore, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				return next(c)
			}

			data, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
				}
				return next(c)
			}

			c.Set(CtxSessionID, cookie.Value)
			c.Set(CtxUserID, data.UserID)
			c.Set(CtxUsername, data.Username)
			c.Set(CtxRoles, domain.NewRoleSet(data.Roles...))

			return next(c)
		}
	}
}
