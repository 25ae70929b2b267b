package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/xomerch/storefront/internal/cart"
	appErrors "github.com/xomerch/storefront/internal/errors"
	"github.com/xomerch/storefront/internal/models"
	"github.com/xomerch/storefront/pkg/payment"
)

// State of the checkout lifecycle. Validating and Invalid are transient
// inside Submit; only the states an observer can see between calls are
// modeled.
type State string

const (
	StateFilling    State = "filling"
	StateProcessing State = "processing"
	StateCompleted  State = "completed"
)

// Flow drives one session's checkout: exhaustive shipping validation, a
// single payment attempt at a time, and order completion. The re-entrancy
// guard is the only concurrency concern: a submit while a payment attempt is
// outstanding is rejected, never queued, so a duplicate charge cannot be
// dispatched.
type Flow struct {
	mu         sync.Mutex
	state      State
	gateway    payment.Gateway
	currency   string
	newOrderID func() string
	completed  *models.Order
}

type Option func(*Flow)

// WithOrderIDFunc overrides order identifier generation.
func WithOrderIDFunc(fn func() string) Option {
	return func(f *Flow) {
		f.newOrderID = fn
	}
}

func NewFlow(gateway payment.Gateway, currency string, opts ...Option) *Flow {
	f := &Flow{
		state:      StateFilling,
		gateway:    gateway,
		currency:   currency,
		newOrderID: newOrderID,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func newOrderID() string {
	return fmt.Sprintf("ORD-%06d", rand.IntN(1000000))
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// CompletedOrder returns the order produced this session, if any.
func (f *Flow) CompletedOrder() *models.Order {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.completed
}

// Enter guards checkout entry: an empty cart with no completed order this
// session short-circuits to the empty-cart presentation instead of the form.
func (f *Flow) Enter(c *cart.Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c.ItemCount() == 0 && f.completed == nil {
		return appErrors.EmptyCartError()
	}

	return nil
}

// Submit validates the shipping form, dispatches exactly one charge, and on
// success clears the cart and completes the order. On any payment failure
// the cart is left untouched and the flow returns to Filling so the user can
// retry.
func (f *Flow) Submit(ctx context.Context, c *cart.Store, details *models.ShippingDetails, paymentMethodID string) (*models.Order, error) {

	f.mu.Lock()

	if f.state == StateProcessing {
		f.mu.Unlock()

		return nil, appErrors.CheckoutInFlightError()
	}

	if c.ItemCount() == 0 {
		f.mu.Unlock()

		return nil, appErrors.EmptyCartError()
	}

	if errs := Validate(details); len(errs) > 0 {
		f.state = StateFilling
		f.mu.Unlock()

		return nil, errs
	}

	f.state = StateProcessing
	f.mu.Unlock()

	amount := int64(math.Round(c.Subtotal() * 100))

	confirmation, err := f.gateway.Charge(ctx, &payment.ChargeRequest{
		AmountMinor:     amount,
		Currency:        f.currency,
		Description:     fmt.Sprintf("Order of %d item(s)", c.ItemCount()),
		PaymentMethodID: paymentMethodID,
		Email:           details.Email,
		Name:            details.FirstName + " " + details.LastName,
		Address:         details.Address,
		City:            details.City,
		State:           details.State,
		ZipCode:         details.ZipCode,
		Country:         details.Country,
	})

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = StateFilling

		return nil, wrapPaymentError(err)
	}

	order := &models.Order{
		ID:          f.newOrderID(),
		Items:       c.Items(),
		TotalMinor:  confirmation.AmountMinor,
		Currency:    f.currency,
		CompletedAt: confirmation.ChargedAt,
	}

	c.Clear(ctx)

	f.completed = order
	f.state = StateCompleted

	return order, nil
}

func wrapPaymentError(err error) error {

	var payErr *payment.Error
	if !errors.As(err, &payErr) {
		return appErrors.ThirdPartyError("Payment failed").WithError(err)
	}

	switch payErr.Kind {
	case payment.FailureDeclined:
		return appErrors.PaymentDeclinedError(payErr.Message).WithError(err)
	case payment.FailureNetwork:
		return appErrors.PaymentNetworkError(payErr.Message).WithError(err)
	case payment.FailureValidated:
		return appErrors.PaymentValidationError(payErr.Message).WithError(err)
	default:
		return appErrors.ThirdPartyError("Payment failed").WithError(err)
	}
}
