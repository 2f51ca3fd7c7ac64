// Package pricing computes final prices from catalog records.
// The calculation is pure: same inputs and same catalog state always
// produce the same price, and nothing is written anywhere.
package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"checkout/core/catalog"
	"checkout/core/types"
)

// Quote is the computed final price for a request. Ephemeral, never
// persisted.
type Quote struct {
	// Price is the final price at full precision
	Price decimal.Decimal `json:"price"`

	// Product is the resolved product
	Product *catalog.Product `json:"product"`

	// Tax is the resolved tax rate
	Tax *catalog.Tax `json:"tax"`

	// Coupon is the resolved coupon, nil when none was supplied
	Coupon *catalog.Coupon `json:"coupon,omitempty"`
}

// Calculator turns (product, tax, optional coupon) into a final price
type Calculator struct {
	store catalog.Store
}

// NewCalculator creates a calculator over a catalog store
func NewCalculator(store catalog.Store) *Calculator {
	return &Calculator{store: store}
}

// CalculatePrice resolves the catalog records and computes the final
// price. Discount is applied to the base price first, then tax on the
// discounted amount:
//
//	discount = base * discount% / 100
//	net      = base - discount
//	tax      = net * rate% / 100
//	final    = net + tax
//
// An empty coupon code means no discount and triggers no lookup. Each
// lookup failure propagates immediately; no partial price is returned.
func (c *Calculator) CalculatePrice(ctx context.Context, productID int64, taxCode, couponCode string) (*Quote, error) {
	product, err := c.store.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	tax, err := c.store.FindTaxByCode(ctx, taxCode)
	if err != nil {
		return nil, err
	}

	var coupon *catalog.Coupon
	if couponCode != "" {
		coupon, err = c.store.FindCouponByCode(ctx, couponCode)
		if err != nil {
			return nil, err
		}
	}

	discountPercent := decimal.Zero
	if coupon != nil {
		discountPercent = coupon.Discount
	}

	discount := types.Percent(product.Price, discountPercent)
	net := product.Price.Sub(discount)
	taxAmount := types.Percent(net, tax.Rate)

	return &Quote{
		Price:   net.Add(taxAmount),
		Product: product,
		Tax:     tax,
		Coupon:  coupon,
	}, nil
}
