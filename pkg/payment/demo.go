package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// demoGateway always succeeds after a fixed simulated delay. It exists for
// environments without live payment credentials.
type demoGateway struct {
	delay time.Duration
}

func NewDemoGateway(delay time.Duration) Gateway {
	return &demoGateway{delay: delay}
}

func (d *demoGateway) Charge(ctx context.Context, req *ChargeRequest) (*Confirmation, error) {

	if d.delay > 0 {
		select {
		case <-time.After(d.delay):
		case <-ctx.Done():
			return nil, NetworkFailure("Payment was interrupted", ctx.Err())
		}
	}

	return &Confirmation{
		Reference:   fmt.Sprintf("demo_%s", uuid.NewString()),
		AmountMinor: req.AmountMinor,
		ChargedAt:   time.Now(),
	}, nil
}
