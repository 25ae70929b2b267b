package payment

import (
	"context"
	"errors"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// stripeGateway charges through Stripe: one payment intent per attempt,
// confirmed immediately with the tokenized payment method.
type stripeGateway struct{}

func NewStripeGateway(apiKey string) Gateway {
	stripe.Key = apiKey

	return &stripeGateway{}
}

func (s *stripeGateway) Charge(ctx context.Context, req *ChargeRequest) (*Confirmation, error) {

	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:       stripe.Int64(req.AmountMinor),
		Currency:     stripe.String(req.Currency),
		Description:  stripe.String(req.Description),
		Confirm:      stripe.Bool(true),
		ReceiptEmail: stripe.String(req.Email),
		Shipping: &stripe.ShippingDetailsParams{
			Name: stripe.String(req.Name),
			Address: &stripe.AddressParams{
				Line1:      stripe.String(req.Address),
				City:       stripe.String(req.City),
				State:      stripe.String(req.State),
				PostalCode: stripe.String(req.ZipCode),
				Country:    stripe.String(req.Country),
			},
		},
	}

	if req.PaymentMethodID != "" {
		params.PaymentMethod = stripe.String(req.PaymentMethodID)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, mapStripeError(err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, Declined("Your card was declined", nil)
	}

	return &Confirmation{
		Reference:   intent.ID,
		AmountMinor: intent.Amount,
		ChargedAt:   time.Now(),
	}, nil
}

func mapStripeError(err error) error {

	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return NetworkFailure("Could not reach the payment processor", err)
	}

	switch stripeErr.Type {
	case stripe.ErrorTypeCard:
		msg := stripeErr.Msg
		if msg == "" {
			msg = "Your card was declined"
		}

		return Declined(msg, err)
	case stripe.ErrorTypeInvalidRequest:
		return Rejected("The payment processor rejected the request", err)
	case stripe.ErrorTypeAPI:
		return NetworkFailure("Could not reach the payment processor", err)
	default:
		return NetworkFailure("Payment processor error", err)
	}
}
