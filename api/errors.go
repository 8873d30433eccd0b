package api

import (
	"errors"
	"net/http"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/ecoleplus/drivingschool/internal/repository"
	"github.com/ecoleplus/drivingschool/internal/service/registration"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP responses. A slot conflict is a
// structured business outcome, not a server fault.
func respondError(c *gin.Context, err error) {
	var missing *registration.MissingFieldError
	if errors.As(err, &missing) {
		c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error(), "field": missing.Field})
		return
	}

	var invalid *domain.ValidationError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Reason})
		return
	}

	var taken *registration.SlotTakenError
	if errors.As(err, &taken) {
		c.JSON(http.StatusConflict, gin.H{
			"error":         "slot is not available",
			"available":     false,
			"conflictCount": taken.ConflictCount,
			"date":          taken.Date,
			"time":          taken.Time,
			"suggestion":    taken.Suggestion,
		})
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
