// Package catalog defines the product, tax and coupon records and the
// lookup contract the pricing core consumes. The catalog is owned by an
// external store; the core only reads it.
package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product is a purchasable catalog item
type Product struct {
	// ID uniquely identifies the product
	ID int64 `json:"id"`

	// Name is a human-readable label
	Name string `json:"name"`

	// Price is the base price, non-negative
	Price decimal.Decimal `json:"price"`
}

// Tax is a tax rate looked up by its code
type Tax struct {
	// Code is the country tax number, format-validated upstream
	Code string `json:"code"`

	// Rate is the tax percentage applied to the net price
	Rate decimal.Decimal `json:"rate"`
}

// Coupon is a percentage discount looked up by its code
type Coupon struct {
	// Code is the coupon code
	Code string `json:"code"`

	// Discount is the percentage taken off the base price.
	// Values outside [0,100] are computed literally; validity is the
	// catalog's responsibility.
	Discount decimal.Decimal `json:"discount"`
}

// Store is the catalog lookup contract. Implementations return a typed
// NOT_FOUND error for missing records and never panic. Lookups must be
// safe for concurrent reads.
type Store interface {
	// FindProductByID resolves a product by id
	FindProductByID(ctx context.Context, id int64) (*Product, error)

	// FindTaxByCode resolves a tax rate by its code
	FindTaxByCode(ctx context.Context, code string) (*Tax, error)

	// FindCouponByCode resolves a coupon by its code
	FindCouponByCode(ctx context.Context, code string) (*Coupon, error)
}
