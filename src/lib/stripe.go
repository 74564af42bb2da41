package lib

import (
	"context"
	"os"

	"github.com/stripe/stripe-go/v82"
)

// PaymentsClient is the slice of the payment processor this API talks to.
// Handlers only create an intent and later re-read it by id.
type PaymentsClient interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*stripe.PaymentIntent, error)
	RetrieveIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error)
}

type stripePayments struct {
	sc *stripe.Client
}

var paymentsClient PaymentsClient

func GetPaymentsClient() PaymentsClient {
	if paymentsClient != nil {
		return paymentsClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	paymentsClient = &stripePayments{sc: stripe.NewClient(apiKey)}
	return paymentsClient
}

// NewPaymentsClient Replace payments instance with custom client implementation
func NewPaymentsClient(c PaymentsClient) {
	paymentsClient = c
}

func (s *stripePayments) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		Metadata: metadata,
	}
	return s.sc.V1PaymentIntents.Create(ctx, params)
}

func (s *stripePayments) RetrieveIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	return s.sc.V1PaymentIntents.Retrieve(ctx, id, &stripe.PaymentIntentRetrieveParams{})
}
