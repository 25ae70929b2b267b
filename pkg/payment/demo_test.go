package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xomerch/storefront/pkg/payment"
)

func TestDemoGatewayCharge(t *testing.T) {
	t.Run("Success - Confirms After Delay", func(t *testing.T) {
		gateway := payment.NewDemoGateway(10 * time.Millisecond)

		start := time.Now()
		confirmation, err := gateway.Charge(context.Background(), &payment.ChargeRequest{
			AmountMinor: 2500,
			Currency:    "usd",
		})

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
		assert.Equal(t, int64(2500), confirmation.AmountMinor)
		assert.Regexp(t, `^demo_`, confirmation.Reference)
		assert.False(t, confirmation.ChargedAt.IsZero())
	})

	t.Run("Success - Zero Delay Skips The Wait", func(t *testing.T) {
		gateway := payment.NewDemoGateway(0)

		confirmation, err := gateway.Charge(context.Background(), &payment.ChargeRequest{AmountMinor: 100})

		require.NoError(t, err)
		assert.Equal(t, int64(100), confirmation.AmountMinor)
	})

	t.Run("Failure - Cancelled Context Maps To Network Error", func(t *testing.T) {
		gateway := payment.NewDemoGateway(time.Minute)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		confirmation, err := gateway.Charge(ctx, &payment.ChargeRequest{AmountMinor: 100})

		assert.Nil(t, confirmation)

		var payErr *payment.Error
		require.True(t, errors.As(err, &payErr))
		assert.Equal(t, payment.FailureNetwork, payErr.Kind)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestErrorMessage(t *testing.T) {
	t.Run("Explicit Message Wins", func(t *testing.T) {
		err := payment.Declined("Your card was declined", nil)

		assert.Equal(t, "Your card was declined", err.Error())
	})

	t.Run("Kind Fallback", func(t *testing.T) {
		err := &payment.Error{Kind: payment.FailureNetwork}

		assert.Equal(t, "payment failed: network", err.Error())
	})
}
