package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v82"
)

func succeededIntent() *stripe.PaymentIntent {
	return &stripe.PaymentIntent{
		ID:     "pi_test",
		Status: stripe.PaymentIntentStatusSucceeded,
		Metadata: map[string]string{
			"hotelId": "1",
			"userId":  "2",
		},
	}
}

func TestVerifyPaymentIntentMissing(t *testing.T) {
	err := verifyPaymentIntent(nil, "1", "2")
	assert.EqualError(t, err, "payment intent not found")
}

func TestVerifyPaymentIntentHotelMismatch(t *testing.T) {
	pi := succeededIntent()
	err := verifyPaymentIntent(pi, "999", "2")
	assert.EqualError(t, err, "payment intent mismatch")
}

func TestVerifyPaymentIntentUserMismatch(t *testing.T) {
	pi := succeededIntent()
	err := verifyPaymentIntent(pi, "1", "999")
	assert.EqualError(t, err, "payment intent mismatch")
}

func TestVerifyPaymentIntentNotSucceeded(t *testing.T) {
	pi := succeededIntent()
	pi.Status = stripe.PaymentIntentStatusProcessing
	err := verifyPaymentIntent(pi, "1", "2")
	assert.ErrorContains(t, err, "payment intent not succeeded")
	assert.ErrorContains(t, err, "processing")
}

func TestVerifyPaymentIntentOK(t *testing.T) {
	pi := succeededIntent()
	assert.NoError(t, verifyPaymentIntent(pi, "1", "2"))
}

func TestComputeTotalCost(t *testing.T) {
	assert.Equal(t, float32(300), computeTotalCost(100, 3))
	assert.InDelta(t, 119.7, float64(computeTotalCost(39.9, 3)), 0.001)
	assert.Equal(t, float32(0), computeTotalCost(0, 10))
}

func TestMinorCurrencyUnits(t *testing.T) {
	assert.Equal(t, int64(30000), minorCurrencyUnits(300))
	// float32 19.99 sits just under 1999 pennies; truncation would charge 1998
	assert.Equal(t, int64(1999), minorCurrencyUnits(computeTotalCost(19.99, 1)))
	assert.Equal(t, int64(11970), minorCurrencyUnits(computeTotalCost(39.9, 3)))
	assert.Equal(t, int64(0), minorCurrencyUnits(0))
}
