package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roomly/services/appointment"
	"roomly/services/booking"
)

// respondServiceError translates service-layer errors into HTTP statuses.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var notFound *appointment.NotFoundError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case booking.HasCode(err, booking.CodeRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case booking.HasCode(err, booking.CodeValidation),
		booking.HasCode(err, booking.CodeMissingAttendees):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case booking.HasCode(err, booking.CodeRoomUnavailable),
		booking.HasCode(err, booking.CodeNoLargerRoom):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
