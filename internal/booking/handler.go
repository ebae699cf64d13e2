package booking

import (
	"net/http"
	"strconv"
	"time"

	"roomly/internal/api"
	"roomly/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Reserves a space for a date, optionally within a catalog slot.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking request"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	actor, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// DeleteBooking godoc
// @Summary      Delete booking
// @Description  Admins delete any booking; standard actors only their own.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID} [delete]
func (h *Handler) DeleteBooking(c *gin.Context) {
	actor, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid booking ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking deleted"})
}

// GetBooking godoc
// @Summary      Get booking
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      404        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid booking ID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// ListMyBookings godoc
// @Summary      List my bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Booking
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	actor, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookings, err := h.service.ListForUser(c.Request.Context(), actor, actor.UserID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListBookings godoc
// @Summary      List all bookings
// @Description  Lists every booking, optionally filtered by date or space. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        date      query     string  false  "Date (YYYY-MM-DD)"
// @Param        space_id  query     int     false  "Space ID"
// @Success      200       {array}   BookingWithDetails
// @Failure      403       {object}  api.ErrorResponse
// @Router       /admin/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	actor, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var filter ListFilter

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
			return
		}
		filter.Date = &date
	}

	if raw := c.Query("space_id"); raw != "" {
		spaceID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid space_id"})
			return
		}
		filter.SpaceID = spaceID
	}

	bookings, err := h.service.List(c.Request.Context(), actor, filter)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListBookingsByUser godoc
// @Summary      List bookings by user
// @Description  Lists another actor's bookings. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {array}   Booking
// @Failure      403     {object}  api.ErrorResponse
// @Router       /admin/users/{userID}/bookings [get]
func (h *Handler) ListBookingsByUser(c *gin.Context) {
	actor, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	userID, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user ID"})
		return
	}

	bookings, err := h.service.ListForUser(c.Request.Context(), actor, userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListBookingsBySpace godoc
// @Summary      List bookings by space
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        spaceID  path      int  true  "Space ID"
// @Success      200      {array}   BookingWithDetails
// @Failure      403      {object}  api.ErrorResponse
// @Router       /admin/spaces/{spaceID}/bookings [get]
func (h *Handler) ListBookingsBySpace(c *gin.Context) {
	actor, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	spaceID, err := strconv.Atoi(c.Param("spaceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid space ID"})
		return
	}

	bookings, err := h.service.ListBySpace(c.Request.Context(), actor, spaceID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListBookingsBySlot godoc
// @Summary      List bookings by time slot
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        slotID  path      int  true  "Time slot ID"
// @Success      200     {array}   BookingWithDetails
// @Failure      403     {object}  api.ErrorResponse
// @Router       /admin/timeslots/{slotID}/bookings [get]
func (h *Handler) ListBookingsBySlot(c *gin.Context) {
	actor, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	slotID, err := strconv.Atoi(c.Param("slotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid slot ID"})
		return
	}

	bookings, err := h.service.ListBySlot(c.Request.Context(), actor, slotID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}
