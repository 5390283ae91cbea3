package handlers

import (
	"errors"
	"net/http"

	"github.com/careerportal/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP taxonomy: 404 for
// missing entities, 403 for ownership failures, 400 for validation,
// 401 for credential/token failures, 500 otherwise.
func respondError(c *gin.Context, err error) {
	var nf *services.NotFoundError
	var br *services.BadRequestError

	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.As(err, &br):
		c.JSON(http.StatusBadRequest, gin.H{"error": br.Error()})
	case errors.Is(err, services.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
