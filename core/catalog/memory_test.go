package catalog

import (
	"context"
	"testing"

	"checkout/internal/errors"
)

func TestFixtureStoreLookups(t *testing.T) {
	store := NewFixtureStore()
	ctx := context.Background()

	product, err := store.FindProductByID(ctx, 1)
	if err != nil {
		t.Fatalf("FindProductByID failed: %v", err)
	}
	if product.Name != "iPhone" || product.Price.StringFixed(2) != "100.00" {
		t.Errorf("unexpected product: %+v", product)
	}

	tax, err := store.FindTaxByCode(ctx, "IT01234567890")
	if err != nil {
		t.Fatalf("FindTaxByCode failed: %v", err)
	}
	if tax.Rate.StringFixed(2) != "22.00" {
		t.Errorf("unexpected tax rate: %s", tax.Rate)
	}

	coupon, err := store.FindCouponByCode(ctx, "P30")
	if err != nil {
		t.Fatalf("FindCouponByCode failed: %v", err)
	}
	if coupon.Discount.StringFixed(2) != "30.00" {
		t.Errorf("unexpected coupon discount: %s", coupon.Discount)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewFixtureStore()
	ctx := context.Background()

	if _, err := store.FindProductByID(ctx, -1); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND for missing product, got %v", err)
	}
	if _, err := store.FindTaxByCode(ctx, "XX0"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND for missing tax, got %v", err)
	}
	if _, err := store.FindCouponByCode(ctx, "ZZZ"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND for missing coupon, got %v", err)
	}
}
