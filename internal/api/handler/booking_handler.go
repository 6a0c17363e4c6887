package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localbiz/directory-api/internal/core/ports"
)

// BookingHandler handles booking creation and owner-scoped lookup.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /api/business/:id/bookings.
//
// @Summary      Book a business's service
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Business id"
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/business/{id}/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), identity.UserID, ports.CreateBookingInput{
		BusinessID: c.Param("id"),
		Service:    req.Service,
		Date:       req.Date,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// ListForBusiness handles GET /api/business/:id/bookings. Only the listing's
// owner may read its bookings; the service enforces that.
//
// @Summary      List bookings for an owned business
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Business id"
// @Success      200  {object}  bookingListResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/business/{id}/bookings [get]
func (h *BookingHandler) ListForBusiness(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListForBusiness(c.Request().Context(), c.Param("id"), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookingListResponse(bookings))
}
