package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinkdoor/guestguide-backend/internal/models"
)

func TestComputePayout_StandardPrice(t *testing.T) {
	breakdown, err := ComputePayout(100)
	require.NoError(t, err)

	assert.Equal(t, float64(100), breakdown.Price)
	assert.Equal(t, float64(9), breakdown.ProcessingFee)
	assert.Equal(t, float64(91), breakdown.Payout)
}

func TestComputePayout_ZeroPrice(t *testing.T) {
	breakdown, err := ComputePayout(0)
	require.NoError(t, err)

	assert.Equal(t, float64(0), breakdown.Price)
	assert.Equal(t, float64(0), breakdown.ProcessingFee)
	assert.Equal(t, float64(0), breakdown.Payout)
}

func TestComputePayout_RoundsHalfUp(t *testing.T) {
	// 9% of 12.34 is 1.1106, fee rounds to 1.11, payout to 11.23.
	breakdown, err := ComputePayout(12.34)
	require.NoError(t, err)

	assert.InDelta(t, 1.11, breakdown.ProcessingFee, 1e-9)
	assert.InDelta(t, 11.23, breakdown.Payout, 1e-9)
}

func TestComputePayout_NegativePriceFails(t *testing.T) {
	_, err := ComputePayout(-1)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "price", validationErr.Field)
}
