package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pinkdoor/guestguide-backend/internal/services"
)

// PurchaseHandler serves the payout preview for the purchase-settings
// summary panel.
type PurchaseHandler struct{}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler() *PurchaseHandler {
	return &PurchaseHandler{}
}

// PayoutRequest is the payload for a payout preview.
type PayoutRequest struct {
	Price float64 `json:"price"`
}

// ComputePayout returns the fee/payout breakdown for a guest-facing price.
// POST /api/v1/purchase/payout
func (h *PurchaseHandler) ComputePayout(c *gin.Context) {
	var req PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body is not valid JSON",
		})
		return
	}

	breakdown, err := services.ComputePayout(req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}
