package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appErrors "github.com/xomerch/storefront/internal/errors"
	"github.com/xomerch/storefront/internal/kvstore"
	"github.com/xomerch/storefront/internal/models"
	service "github.com/xomerch/storefront/internal/services"
	"github.com/xomerch/storefront/pkg/payment"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Charge(ctx context.Context, req *payment.ChargeRequest) (*payment.Confirmation, error) {
	args := m.Called(ctx, req)

	if confirmation := args.Get(0); confirmation != nil {
		return confirmation.(*payment.Confirmation), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	args := m.Called(ctx, req)

	return args.Error(0)
}

func checkoutShipping() models.ShippingDetails {
	return models.ShippingDetails{
		FirstName: "Abel",
		LastName:  "Tesfaye",
		Email:     "abel@example.com",
		Address:   "1 Blinding Lights Blvd",
		City:      "Toronto",
		State:     "ON",
		ZipCode:   "M5V2T6",
		Country:   "Canada",
	}
}

// seedSessionCart puts one 25.00 line item into the session's cart via the
// shared key-value store.
func seedSessionCart(t *testing.T, kv kvstore.Store, sessionID string) {
	t.Helper()

	ctx := context.Background()

	mockRepo := new(mockProductRepo)
	tee := &models.Product{ID: "p1", Name: "After Hours Tee", Price: 25, Category: models.CategoryApparel}
	mockRepo.On("GetProductByID", ctx, "p1").Return(tee, nil).Once()

	_, err := service.NewCartService(kv, mockRepo, 3*time.Second).
		AddItem(ctx, sessionID, &models.AddItemRequest{ProductID: "p1"})
	require.NoError(t, err)
}

func TestCheckoutServiceEnter(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		kv := kvstore.NewMemoryStore()
		checkoutService := service.NewCheckoutService(kv, new(mockGateway), nil, "usd")

		err := checkoutService.Enter(ctx, "session-1")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeEmptyCart, appErr.Code)
	})

	t.Run("Success - Cart Has Items", func(t *testing.T) {
		kv := kvstore.NewMemoryStore()
		seedSessionCart(t, kv, "session-1")
		checkoutService := service.NewCheckoutService(kv, new(mockGateway), nil, "usd")

		assert.NoError(t, checkoutService.Enter(ctx, "session-1"))
	})
}

func TestCheckoutServiceSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Charges, Clears Cart, Emails Confirmation", func(t *testing.T) {
		// Arrange
		kv := kvstore.NewMemoryStore()
		seedSessionCart(t, kv, "session-1")

		gateway := new(mockGateway)
		gateway.On("Charge", mock.Anything, mock.MatchedBy(func(req *payment.ChargeRequest) bool {
			return req.AmountMinor == 2500 && req.Currency == "usd"
		})).Return(&payment.Confirmation{Reference: "demo_ref", AmountMinor: 2500, ChargedAt: time.Now()}, nil).Once()

		email := new(mockEmailService)
		email.On("Send", mock.Anything, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
			return req.To == "abel@example.com"
		})).Return(nil).Once()

		checkoutService := service.NewCheckoutService(kv, gateway, email, "usd")

		// Act
		order, err := checkoutService.Submit(ctx, "session-1",
			&models.CheckoutRequest{Shipping: checkoutShipping()}, "pm_card_visa")

		// Assert
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, int64(2500), order.TotalMinor)
		assert.Regexp(t, `^ORD-\d{6}$`, order.ID)

		cartService := service.NewCartService(kv, new(mockProductRepo), 3*time.Second)
		assert.Empty(t, cartService.GetCart(ctx, "session-1").Items)

		assert.Equal(t, order, checkoutService.CompletedOrder("session-1"))

		gateway.AssertExpectations(t)
		email.AssertExpectations(t)
	})

	t.Run("Success - Email Failure Does Not Fail The Order", func(t *testing.T) {
		kv := kvstore.NewMemoryStore()
		seedSessionCart(t, kv, "session-1")

		gateway := new(mockGateway)
		gateway.On("Charge", mock.Anything, mock.Anything).
			Return(&payment.Confirmation{Reference: "demo_ref", AmountMinor: 2500, ChargedAt: time.Now()}, nil).Once()

		email := new(mockEmailService)
		email.On("Send", mock.Anything, mock.Anything).Return(errors.New("sendgrid unavailable")).Once()

		checkoutService := service.NewCheckoutService(kv, gateway, email, "usd")

		order, err := checkoutService.Submit(ctx, "session-1",
			&models.CheckoutRequest{Shipping: checkoutShipping()}, "pm_card_visa")

		require.NoError(t, err)
		assert.NotNil(t, order)
	})

	t.Run("Failure - Declined Charge Leaves Cart Intact, No Email", func(t *testing.T) {
		kv := kvstore.NewMemoryStore()
		seedSessionCart(t, kv, "session-1")

		gateway := new(mockGateway)
		gateway.On("Charge", mock.Anything, mock.Anything).
			Return(nil, payment.Declined("Your card was declined", nil)).Once()

		email := new(mockEmailService)
		checkoutService := service.NewCheckoutService(kv, gateway, email, "usd")

		order, err := checkoutService.Submit(ctx, "session-1",
			&models.CheckoutRequest{Shipping: checkoutShipping()}, "pm_card_visa")

		assert.Nil(t, order)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodePaymentDeclined, appErr.Code)

		cartService := service.NewCartService(kv, new(mockProductRepo), 3*time.Second)
		assert.Len(t, cartService.GetCart(ctx, "session-1").Items, 1)

		email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Guard - Flow Is Shared Per Session", func(t *testing.T) {
		kv := kvstore.NewMemoryStore()
		seedSessionCart(t, kv, "session-1")
		seedSessionCart(t, kv, "session-2")

		gateway := new(mockGateway)
		gateway.On("Charge", mock.Anything, mock.Anything).
			Return(&payment.Confirmation{Reference: "demo_ref", AmountMinor: 2500, ChargedAt: time.Now()}, nil).Twice()

		checkoutService := service.NewCheckoutService(kv, gateway, nil, "usd")

		first, err := checkoutService.Submit(ctx, "session-1",
			&models.CheckoutRequest{Shipping: checkoutShipping()}, "pm_card_visa")
		require.NoError(t, err)

		second, err := checkoutService.Submit(ctx, "session-2",
			&models.CheckoutRequest{Shipping: checkoutShipping()}, "pm_card_visa")
		require.NoError(t, err)

		assert.Equal(t, first, checkoutService.CompletedOrder("session-1"))
		assert.Equal(t, second, checkoutService.CompletedOrder("session-2"))
	})
}
