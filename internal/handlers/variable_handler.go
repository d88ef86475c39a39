package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pinkdoor/guestguide-backend/internal/services"
)

// VariableHandler serves the read-only variable catalog for the
// variable-picker widget.
type VariableHandler struct {
	variableService *services.VariableService
}

// NewVariableHandler creates a new variable handler.
func NewVariableHandler(variableService *services.VariableService) *VariableHandler {
	return &VariableHandler{variableService: variableService}
}

// ListVariables searches the catalog with ?q=; without a query it returns
// the full catalog grouped by category, which is what the picker shows at
// rest.
// GET /api/v1/variables
func (h *VariableHandler) ListVariables(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, gin.H{
			"categories": h.variableService.ListByCategory(),
		})
		return
	}

	matches := h.variableService.Search(query)
	c.JSON(http.StatusOK, gin.H{
		"variables": matches,
		"count":     len(matches),
	})
}

// ListCategories returns the grouped catalog.
// GET /api/v1/variables/categories
func (h *VariableHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.variableService.ListByCategory(),
	})
}

// GetVariable returns one catalog variable.
// GET /api/v1/variables/:id
func (h *VariableHandler) GetVariable(c *gin.Context) {
	id := c.Param("id")
	variable, ok := h.variableService.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Variable " + id + " not found",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"variable": variable})
}

// GetVariableToken returns the literal substitution token for an id. The
// id is deliberately not validated against the catalog.
// GET /api/v1/variables/:id/token
func (h *VariableHandler) GetVariableToken(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"id":    id,
		"token": h.variableService.Format(id),
	})
}
