package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hammondstays/hotels-api/internal/core/domain"
	"github.com/hammondstays/hotels-api/internal/core/ports"
)

// HotelHandler handles HTTP requests for hotel operations.
type HotelHandler struct {
	service ports.HotelService
}

func NewHotelHandler(service ports.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

// List handles GET /hotels.
//
// @Summary      List hotels
// @Tags         hotels
// @Produce      json
// @Success      200  {array}  ports.HotelSummary
// @Router       /hotels [get]
func (h *HotelHandler) List(c echo.Context) error {
	hotels, err := h.service.ListHotels(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotels)
}

// Get handles GET /hotels/:id.
//
// @Summary      Get a hotel by id
// @Tags         hotels
// @Produce      json
// @Param        id   path      int  true  "Hotel id"
// @Success      200  {object}  ports.HotelSummary
// @Failure      404  {object}  errorResponse
// @Router       /hotels/{id} [get]
func (h *HotelHandler) Get(c echo.Context) error {
	id, err := hotelID(c)
	if err != nil {
		return err
	}

	hotel, err := h.service.GetHotel(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotel)
}

// Create handles POST /hotels. Admin only (route-level RBAC).
//
// @Summary      Create a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Param        body  body      hotelRequest  true  "Hotel fields"
// @Success      201   {object}  ports.HotelDetail
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /hotels [post]
func (h *HotelHandler) Create(c echo.Context) error {
	var req hotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.CreateHotel(c.Request().Context(), ports.HotelInput{
		Name:      req.Name,
		Address:   req.Address,
		ManagerID: req.ManagerID,
	}, callerRoles(c))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/hotels/%d", created.ID))
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /hotels/:id. Any authenticated caller may rename a
// hotel; manager reassignment is decided by the authorization policy.
//
// @Summary      Update a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Hotel id"
// @Param        body  body      hotelRequest  true  "Hotel fields"
// @Success      200   {object}  ports.HotelDetail
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /hotels/{id} [put]
func (h *HotelHandler) Update(c echo.Context) error {
	id, err := hotelID(c)
	if err != nil {
		return err
	}

	var req hotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.UpdateHotel(c.Request().Context(), id, ports.HotelInput{
		Name:      req.Name,
		Address:   req.Address,
		ManagerID: req.ManagerID,
	}, callerRoles(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /hotels/:id. The policy restricts it to admins.
//
// @Summary      Delete a hotel
// @Tags         hotels
// @Param        id  path  int  true  "Hotel id"
// @Success      200
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /hotels/{id} [delete]
func (h *HotelHandler) Delete(c echo.Context) error {
	id, err := hotelID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteHotel(c.Request().Context(), id, callerRoles(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// hotelID parses the :id path parameter. A non-numeric id cannot reference
// any hotel, so it reports the same NotFound as an absent row.
func hotelID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrHotelNotFound
	}
	return id, nil
}
