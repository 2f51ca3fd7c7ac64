// Package stripe provides the Stripe payment backend.
package stripe

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"checkout/core/payment"
	"checkout/internal/config"
	"checkout/internal/logging"
)

// Gateway is the Stripe SDK surface the backend depends on. The real
// SDK takes a whole-unit amount and reports a boolean outcome; faults
// surface as errors.
type Gateway interface {
	ProcessPayment(ctx context.Context, amount int64) (bool, error)
}

// Backend wraps the Stripe gateway. Amounts are truncated to their
// integer part before the gateway call; that conversion is
// Stripe-specific and deliberate.
type Backend struct {
	gateway Gateway
}

// New creates a Stripe backend over the built-in gateway client
func New(cfg config.StripeConfig) *Backend {
	return &Backend{gateway: &gatewayClient{minAmount: cfg.MinAmount}}
}

// NewWithGateway creates a Stripe backend over a custom gateway
func NewWithGateway(gateway Gateway) *Backend {
	return &Backend{gateway: gateway}
}

// Name returns the canonical backend name
func (b *Backend) Name() string {
	return "stripe"
}

// Pay charges the amount through Stripe. A gateway decline is reported
// as a false result without an error; gateway faults are re-signaled as
// the uniform payment error with the gateway's message.
func (b *Backend) Pay(ctx context.Context, amount decimal.Decimal) (bool, error) {
	ok, err := b.gateway.ProcessPayment(ctx, amount.IntPart())
	if err != nil {
		logging.Warn("stripe payment failed",
			zap.String("amount", amount.StringFixed(2)),
			zap.Error(err))
		return false, payment.NotProcessed(err)
	}
	return ok, nil
}

// gatewayClient simulates the external Stripe SDK: it declines amounts
// below the processing minimum and accepts everything else.
type gatewayClient struct {
	minAmount int64
}

func (c *gatewayClient) ProcessPayment(ctx context.Context, amount int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if amount < c.minAmount {
		return false, nil
	}
	return true, nil
}
