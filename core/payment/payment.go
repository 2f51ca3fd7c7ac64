// Package payment defines the payment backend capability.
// A backend wraps exactly one external gateway and exposes a uniform
// pay-and-report contract; gateway-specific failures never leave the
// backend untranslated.
package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"checkout/internal/errors"
)

// Backend is the polymorphic payment capability. Pay attempts to charge
// the given amount exactly once and reports whether the gateway accepted
// it. Any gateway fault is returned as a PAYMENT_ERROR typed error
// carrying the gateway's diagnostic message.
type Backend interface {
	// Name returns the canonical backend name (lowercase)
	Name() string

	// Pay charges the amount through the underlying gateway
	Pay(ctx context.Context, amount decimal.Decimal) (bool, error)
}

// NotProcessed normalizes a gateway failure into the uniform
// PAYMENT_ERROR carrying the gateway's message.
func NotProcessed(cause error) error {
	return errors.PaymentNotProcessed(cause.Error(), cause)
}
