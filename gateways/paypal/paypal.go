// Package paypal provides the PayPal payment backend.
package paypal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"checkout/core/payment"
	"checkout/internal/config"
	"checkout/internal/logging"
)

// Gateway is the PayPal SDK surface the backend depends on. The real
// SDK charges a float amount and reports faults as errors.
type Gateway interface {
	Pay(ctx context.Context, amount float64) error
}

// Backend wraps the PayPal gateway. Amounts are converted to float64
// before the gateway call; that conversion is PayPal-specific and
// deliberate.
type Backend struct {
	gateway Gateway
}

// New creates a PayPal backend over the built-in gateway client
func New(cfg config.PaypalConfig) *Backend {
	return &Backend{gateway: &gatewayClient{maxAmount: cfg.MaxAmount}}
}

// NewWithGateway creates a PayPal backend over a custom gateway
func NewWithGateway(gateway Gateway) *Backend {
	return &Backend{gateway: gateway}
}

// Name returns the canonical backend name
func (b *Backend) Name() string {
	return "paypal"
}

// Pay charges the amount through PayPal. Any gateway fault is
// re-signaled as the uniform payment error with the gateway's message.
func (b *Backend) Pay(ctx context.Context, amount decimal.Decimal) (bool, error) {
	if err := b.gateway.Pay(ctx, amount.InexactFloat64()); err != nil {
		logging.Warn("paypal payment rejected",
			zap.String("amount", amount.StringFixed(2)),
			zap.Error(err))
		return false, payment.NotProcessed(err)
	}
	return true, nil
}

// gatewayClient simulates the external PayPal SDK: it accepts any
// amount up to a hard ceiling and rejects everything above it.
type gatewayClient struct {
	maxAmount float64
}

func (c *gatewayClient) Pay(ctx context.Context, amount float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount > c.maxAmount {
		return fmt.Errorf("Too high price")
	}
	return nil
}
