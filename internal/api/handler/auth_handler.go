package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hammondstays/hotels-api/internal/api/middleware"
	"github.com/hammondstays/hotels-api/internal/core/ports"
)

// AuthHandler handles login, logout, and current-user lookups. It owns the
// cookie mechanics; the service below only sees opaque session ids.
type AuthHandler struct {
	service    ports.AuthService
	sessionTTL time.Duration
	secure     bool
}

func NewAuthHandler(service ports.AuthService, sessionTTL time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{service: service, sessionTTL: sessionTTL, secure: secure}
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login with username and password
// @Tags         authentication
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  ports.UserView
// @Failure      400   {object}  errorResponse
// @Router       /authentication/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, sessionID, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(sessionID, h.sessionTTL))
	return c.JSON(http.StatusOK, view)
}

// Me returns the currently logged-in user.
//
// @Summary      Current user
// @Tags         authentication
// @Produce      json
// @Success      200  {object}  ports.UserView
// @Failure      401  {object}  errorResponse
// @Router       /authentication/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	view, err := h.service.CurrentUser(c.Request().Context(), callerSessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Logout terminates the session and expires the cookie.
//
// @Summary      Logout
// @Tags         authentication
// @Success      200
// @Router       /authentication/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.service.Logout(c.Request().Context(), callerSessionID(c)); err != nil {
		return err
	}

	expired := h.sessionCookie("", -time.Hour)
	expired.MaxAge = -1
	c.SetCookie(expired)

	return c.NoContent(http.StatusOK)
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
