package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// ErrInvalidAmount means the charge amount is zero, negative or otherwise
// not chargeable.
var ErrInvalidAmount = errors.New("invalid payment amount")

// PaymentService issues Stripe payment intents for booking fees.
type PaymentService struct {
	currency string
}

// NewPaymentService configures the Stripe client. secretKey is the account
// secret; currency is the ISO code charges are made in.
func NewPaymentService(secretKey, currency string) *PaymentService {
	stripe.Key = secretKey
	return &PaymentService{currency: currency}
}

// CreateIntent converts the amount from major units to the provider's minor
// units and returns the intent's client secret unmodified. Provider and
// network failures propagate wrapped; the caller surfaces them as a
// dependency failure, never swallows them.
func (s *PaymentService) CreateIntent(ctx context.Context, amount float64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(math.Round(amount * 100))),
		Currency:           stripe.String(s.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
