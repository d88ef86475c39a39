package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pinkdoor/guestguide-backend/internal/models"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondError maps domain errors onto HTTP responses: validation errors
// become 400s, missing identifiers become 404s, everything else is a 500.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Error(),
		})
		return
	}

	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: notFoundErr.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An unexpected error occurred",
	})
}

// guideWarnings collects operator-facing warnings about a saved item. An
// empty reservation-stage filter is a legal state, but it makes the item
// invisible to every guest, so the operator is always told about it.
func guideWarnings(g models.GuideItem) []string {
	var warnings []string
	if g.HiddenFromGuests() {
		warnings = append(warnings, "No reservation stages selected. This content will not be visible to guests.")
	}
	return warnings
}
