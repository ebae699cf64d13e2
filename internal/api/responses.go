package api

import (
	"net/http"

	"roomly/internal/apperr"
	"roomly/internal/logger"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// RespondError maps an error kind to an HTTP status. Unclassified errors
// are logged and hidden behind a generic 500.
func RespondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperr.KindInvalidInput:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperr.KindForbidden:
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperr.KindTransient:
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("internal error", "error", err.Error(), "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
