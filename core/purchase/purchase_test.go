package purchase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"checkout/core/catalog"
	"checkout/core/pricing"
	"checkout/gateways"
	"checkout/internal/errors"
)

type stubBackend struct {
	name   string
	paid   []decimal.Decimal
	result bool
	err    error
}

func (b *stubBackend) Name() string { return b.name }

func (b *stubBackend) Pay(ctx context.Context, amount decimal.Decimal) (bool, error) {
	b.paid = append(b.paid, amount)
	return b.result, b.err
}

// trackingStore counts every lookup so ordering can be asserted.
type trackingStore struct {
	catalog.Store
	lookups int
}

func (s *trackingStore) FindProductByID(ctx context.Context, id int64) (*catalog.Product, error) {
	s.lookups++
	return s.Store.FindProductByID(ctx, id)
}

func (s *trackingStore) FindTaxByCode(ctx context.Context, code string) (*catalog.Tax, error) {
	s.lookups++
	return s.Store.FindTaxByCode(ctx, code)
}

func (s *trackingStore) FindCouponByCode(ctx context.Context, code string) (*catalog.Coupon, error) {
	s.lookups++
	return s.Store.FindCouponByCode(ctx, code)
}

func newService(store catalog.Store, backend *stubBackend) *Service {
	reg := gateways.NewRegistry()
	_ = reg.Register(backend)
	return NewService(pricing.NewCalculator(store), reg)
}

func TestExecuteChargesComputedPrice(t *testing.T) {
	backend := &stubBackend{name: "paypal", result: true}
	svc := newService(catalog.NewFixtureStore(), backend)

	ok, err := svc.Execute(context.Background(), "paypal", 1, "GR012345678", "P10")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !ok {
		t.Error("expected purchase to succeed")
	}
	if len(backend.paid) != 1 {
		t.Fatalf("expected exactly one payment attempt, got %d", len(backend.paid))
	}
	// 100 - 10% = 90, + 24% tax = 111.60
	if got := backend.paid[0].StringFixed(2); got != "111.60" {
		t.Errorf("backend charged %s, expected 111.60", got)
	}
}

func TestExecuteValidatesBackendBeforePricing(t *testing.T) {
	store := &trackingStore{Store: catalog.NewFixtureStore()}
	backend := &stubBackend{name: "paypal", result: true}
	svc := newService(store, backend)

	_, err := svc.Execute(context.Background(), "unknown", 1, "GR012345678", "")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !errors.IsType(err, errors.TypeNotSupported) {
		t.Errorf("expected NOT_SUPPORTED error, got %v", err)
	}
	if store.lookups != 0 {
		t.Errorf("unsupported backend must fail before any catalog lookup, saw %d", store.lookups)
	}
	if len(backend.paid) != 0 {
		t.Error("no payment may be attempted for an unsupported backend")
	}
}

func TestExecutePropagatesPricingErrors(t *testing.T) {
	backend := &stubBackend{name: "stripe", result: true}
	svc := newService(catalog.NewFixtureStore(), backend)

	tests := []struct {
		name       string
		productID  int64
		taxCode    string
		couponCode string
		message    string
	}{
		{"product missing", 99, "GR012345678", "", "Product not found"},
		{"tax missing", 1, "XX000000000", "", "Tax code not found"},
		{"coupon missing", 1, "GR012345678", "NOPE", "Coupon code not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Execute(context.Background(), "stripe", tt.productID, tt.taxCode, tt.couponCode)
			if err == nil {
				t.Fatal("expected error")
			}
			e, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("expected typed error, got %T", err)
			}
			// errors must propagate unchanged, not wrapped
			if e.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, e.Message)
			}
		})
	}

	if len(backend.paid) != 0 {
		t.Error("no payment may be attempted when pricing fails")
	}
}

func TestExecuteSurfacesPaymentFailure(t *testing.T) {
	backend := &stubBackend{
		name: "paypal",
		err:  errors.PaymentNotProcessed("Too high price", nil),
	}
	svc := newService(catalog.NewFixtureStore(), backend)

	ok, err := svc.Execute(context.Background(), "paypal", 1, "GR012345678", "")
	if ok {
		t.Error("failed payment must not report success")
	}
	if !errors.IsType(err, errors.TypePayment) {
		t.Errorf("expected PAYMENT_ERROR, got %v", err)
	}
	if len(backend.paid) != 1 {
		t.Errorf("payment is attempted exactly once, got %d attempts", len(backend.paid))
	}
}

func TestExecuteReportsGatewayDecline(t *testing.T) {
	backend := &stubBackend{name: "stripe", result: false}
	svc := newService(catalog.NewFixtureStore(), backend)

	ok, err := svc.Execute(context.Background(), "stripe", 1, "GR012345678", "")
	if err != nil {
		t.Fatalf("decline is not an error: %v", err)
	}
	if ok {
		t.Error("declined payment must report false")
	}
}
