// Package purchase orchestrates pricing and payment.
package purchase

import (
	"context"

	"go.uber.org/zap"

	"checkout/core/pricing"
	"checkout/gateways"
	"checkout/internal/logging"
)

// Service composes the price calculator with a payment backend selected
// from the registry. Payment is attempted exactly once per call, only
// after a price was successfully computed; there are no retries and no
// compensating action.
type Service struct {
	calculator *pricing.Calculator
	registry   *gateways.Registry
}

// NewService creates a purchase service
func NewService(calculator *pricing.Calculator, registry *gateways.Registry) *Service {
	return &Service{calculator: calculator, registry: registry}
}

// Execute resolves the backend, computes the final price and charges it.
// The backend name is validated before any catalog lookup, so an
// unsupported backend fails without wasted catalog work. Calculator and
// payment errors propagate unchanged.
func (s *Service) Execute(ctx context.Context, backendName string, productID int64, taxCode, couponCode string) (bool, error) {
	backend, err := s.registry.Resolve(backendName)
	if err != nil {
		return false, err
	}

	quote, err := s.calculator.CalculatePrice(ctx, productID, taxCode, couponCode)
	if err != nil {
		return false, err
	}

	processed, err := backend.Pay(ctx, quote.Price)
	if err != nil {
		return false, err
	}

	logging.Info("purchase executed",
		zap.String("backend", backend.Name()),
		zap.Int64("product_id", productID),
		zap.String("price", quote.Price.StringFixed(2)),
		zap.Bool("processed", processed))

	return processed, nil
}
