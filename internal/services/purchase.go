package services

import (
	"math"

	"github.com/pinkdoor/guestguide-backend/internal/models"
)

// processingFeeRate is the platform's cut of every paid add-on.
const processingFeeRate = 0.09

// PayoutBreakdown shows the operator what a guest pays, what the platform
// keeps and what the operator receives.
type PayoutBreakdown struct {
	Price         float64 `json:"price"`
	ProcessingFee float64 `json:"processing_fee"`
	Payout        float64 `json:"payout"`
}

// ComputePayout calculates the payout breakdown for a guest-facing price.
// Amounts are rounded to two decimal places, half up. A negative price is
// a validation error.
func ComputePayout(price float64) (PayoutBreakdown, error) {
	if price < 0 {
		return PayoutBreakdown{}, &models.ValidationError{Field: "price", Message: "price must not be negative"}
	}
	fee := round2(price * processingFeeRate)
	return PayoutBreakdown{
		Price:         price,
		ProcessingFee: fee,
		Payout:        round2(price - fee),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
