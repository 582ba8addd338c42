package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hammondstays/hotels-api/internal/api/middleware"
	"github.com/hammondstays/hotels-api/internal/core/domain"
)

// callerRoles extracts the capability set injected by the Session
// middleware. Routes without a session yield an empty set, which the
// policy treats as no privilege at all.
func callerRoles(c echo.Context) domain.RoleSet {
	roles, _ := c.Get(middleware.CtxRoles).(domain.RoleSet)
	return roles
}

// callerSessionID extracts the opaque session id, empty when anonymous.
func callerSessionID(c echo.Context) string {
	id, _ := c.Get(middleware.CtxSessionID).(string)
	return id
}
