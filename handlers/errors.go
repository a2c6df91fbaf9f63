package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"musicpass-backend/models"
)

// handleError maps domain errors to a status code. The error text is kept
// on the gin context so the request log carries it.
func handleError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, models.ErrTicketNotFound),
		errors.Is(err, models.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrNotSellable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, models.ErrInvalidToken),
		errors.Is(err, models.ErrSessionNotFound):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})

	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, models.ErrQRHidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, models.ErrCollaboratorUnavailable):
		c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
