package space

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

// ListSpaces godoc
// @Summary      List spaces
// @Description  Lists bookable spaces, optionally filtered by minimum capacity or equipment.
// @Tags         spaces
// @Security     BearerAuth
// @Produce      json
// @Param        min_capacity  query     int   false  "Minimum capacity"
// @Param        equipped      query     bool  false  "Only equipped spaces"
// @Success      200  {array}   Space
// @Failure      400  {object}  api.ErrorResponse
// @Router       /spaces [get]
func (h *Handler) ListSpaces(c *gin.Context) {
	var filter ListFilter

	if raw := c.Query("min_capacity"); raw != "" {
		minCapacity, err := strconv.Atoi(raw)
		if err != nil || minCapacity < 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid min_capacity"})
			return
		}
		filter.MinCapacity = minCapacity
	}

	if raw := c.Query("equipped"); raw != "" {
		equipped, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid equipped flag"})
			return
		}
		filter.EquippedOnly = equipped
	}

	spaces, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, spaces)
}

// GetSpace godoc
// @Summary      Get space
// @Tags         spaces
// @Security     BearerAuth
// @Produce      json
// @Param        spaceID  path      int  true  "Space ID"
// @Success      200      {object}  Space
// @Failure      404      {object}  api.ErrorResponse
// @Router       /spaces/{spaceID} [get]
func (h *Handler) GetSpace(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("spaceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid space ID"})
		return
	}

	space, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, space)
}

// CreateSpace godoc
// @Summary      Create space
// @Description  Creates a bookable space. Admin only.
// @Tags         spaces
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSpaceRequest  true  "Space attributes"
// @Success      201      {object}  Space
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /admin/spaces [post]
func (h *Handler) CreateSpace(c *gin.Context) {
	actor, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	space, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, space)
}

// UpdateSpace godoc
// @Summary      Update space
// @Tags         spaces
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        spaceID  path      int                 true  "Space ID"
// @Param        request  body      UpdateSpaceRequest  true  "Space attributes"
// @Success      200      {object}  Space
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/spaces/{spaceID} [put]
func (h *Handler) UpdateSpace(c *gin.Context) {
	actor, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("spaceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid space ID"})
		return
	}

	var req UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	space, err := h.service.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, space)
}

// DeleteSpace godoc
// @Summary      Delete space
// @Description  Deletes a space and every booking that references it. Admin only.
// @Tags         spaces
// @Security     BearerAuth
// @Produce      json
// @Param        spaceID  path      int  true  "Space ID"
// @Success      200      {object}  api.MessageResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/spaces/{spaceID} [delete]
func (h *Handler) DeleteSpace(c *gin.Context) {
	actor, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("spaceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid space ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Space deleted"})
}
