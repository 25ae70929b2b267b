package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/xomerch/storefront/internal/cart"
	"github.com/xomerch/storefront/internal/checkout"
	"github.com/xomerch/storefront/internal/kvstore"
	"github.com/xomerch/storefront/internal/models"
	"github.com/xomerch/storefront/pkg/payment"
	"github.com/xomerch/storefront/pkg/sendgrid"
)

// CheckoutService keeps one checkout flow per session so the re-entrancy
// guard holds across requests. Flows are in-memory only, matching the
// session-scoped lifecycle: nothing about a checkout survives the process.
type CheckoutService struct {
	mu       sync.Mutex
	flows    map[string]*checkout.Flow
	kv       kvstore.Store
	gateway  payment.Gateway
	email    sendgrid.EmailService
	currency string
}

func NewCheckoutService(kv kvstore.Store, gateway payment.Gateway, email sendgrid.EmailService, currency string) *CheckoutService {
	return &CheckoutService{
		flows:    make(map[string]*checkout.Flow),
		kv:       kv,
		gateway:  gateway,
		email:    email,
		currency: currency,
	}
}

func (s *CheckoutService) flowFor(sessionID string) *checkout.Flow {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[sessionID]
	if !ok {
		flow = checkout.NewFlow(s.gateway, s.currency)
		s.flows[sessionID] = flow
	}

	return flow
}

func (s *CheckoutService) loadCart(ctx context.Context, sessionID string) *cart.Store {
	key := kvstore.Key(kvstore.CartKeyPrefix, sessionID)

	return cart.NewStore(ctx, s.kv, key)
}

// Enter applies the empty-cart guard before the form is shown.
func (s *CheckoutService) Enter(ctx context.Context, sessionID string) error {
	return s.flowFor(sessionID).Enter(s.loadCart(ctx, sessionID))
}

// ValidateField gives incremental feedback for a single form field.
func (s *CheckoutService) ValidateField(field, value string) string {
	return checkout.ValidateField(field, value)
}

// Submit drives one payment attempt and, on success, sends the order
// confirmation email. Email failures are logged only; the order stands.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string, req *models.CheckoutRequest, paymentMethodID string) (*models.Order, error) {

	flow := s.flowFor(sessionID)

	order, err := flow.Submit(ctx, s.loadCart(ctx, sessionID), &req.Shipping, paymentMethodID)
	if err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, req.Shipping.Email, order)

	return order, nil
}

// CompletedOrder returns the order completed this session, if any.
func (s *CheckoutService) CompletedOrder(sessionID string) *models.Order {
	return s.flowFor(sessionID).CompletedOrder()
}

func (s *CheckoutService) sendConfirmation(ctx context.Context, to string, order *models.Order) {

	if s.email == nil {
		return
	}

	total := float64(order.TotalMinor) / 100

	err := s.email.Send(ctx, &models.EmailNotificationRequest{
		To:      to,
		Subject: fmt.Sprintf("Order confirmation %s", order.ID),
		Content: fmt.Sprintf("Thanks for your order! Your order %s for %.2f %s was placed at %s.",
			order.ID, total, order.Currency, order.CompletedAt.Format(time.RFC1123)),
	})
	if err != nil {
		slog.Warn("Failed to send order confirmation email",
			slog.String("orderId", order.ID),
			slog.String("error", err.Error()))
	}
}
