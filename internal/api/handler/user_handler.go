package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hammondstays/hotels-api/internal/core/ports"
)

// UserHandler handles user provisioning. Admin only (route-level RBAC).
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users.
//
// @Summary      Create a user with roles
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      200   {object}  ports.UserView
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// List handles GET /users.
//
// @Summary      List users with their roles
// @Tags         users
// @Produce      json
// @Success      200  {array}  ports.UserView
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	views, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}
