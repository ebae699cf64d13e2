package timeslot

import (
	"net/http"
	"strconv"

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

// ListTimeSlots godoc
// @Summary      List time slots
// @Description  Lists the weekly slot catalog, optionally filtered by day.
// @Tags         timeslots
// @Security     BearerAuth
// @Produce      json
// @Param        day  query     string  false  "Weekday (MONDAY..FRIDAY)"
// @Success      200  {array}   TimeSlot
// @Failure      400  {object}  api.ErrorResponse
// @Router       /timeslots [get]
func (h *Handler) ListTimeSlots(c *gin.Context) {
	if raw := c.Query("day"); raw != "" {
		day, err := ParseWeekday(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}

		slots, err := h.service.ListByDay(c.Request.Context(), day)
		if err != nil {
			api.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, slots)
		return
	}

	slots, err := h.service.List(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// GetTimeSlot godoc
// @Summary      Get time slot
// @Tags         timeslots
// @Security     BearerAuth
// @Produce      json
// @Param        slotID  path      int  true  "Time slot ID"
// @Success      200     {object}  TimeSlot
// @Failure      404     {object}  api.ErrorResponse
// @Router       /timeslots/{slotID} [get]
func (h *Handler) GetTimeSlot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("slotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid slot ID"})
		return
	}

	slot, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

// CreateTimeSlot godoc
// @Summary      Create time slot
// @Description  Adds a weekly slot to the catalog. Admin only.
// @Tags         timeslots
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTimeSlotRequest  true  "Slot attributes"
// @Success      201      {object}  TimeSlot
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /admin/timeslots [post]
func (h *Handler) CreateTimeSlot(c *gin.Context) {
	actor, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// DeleteTimeSlot godoc
// @Summary      Delete time slot
// @Description  Removes a slot from the catalog. Fails while bookings reference it. Admin only.
// @Tags         timeslots
// @Security     BearerAuth
// @Produce      json
// @Param        slotID  path      int  true  "Time slot ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      404     {object}  api.ErrorResponse
// @Failure      409     {object}  api.ErrorResponse
// @Router       /admin/timeslots/{slotID} [delete]
func (h *Handler) DeleteTimeSlot(c *gin.Context) {
	actor, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("slotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid slot ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Time slot deleted"})
}
