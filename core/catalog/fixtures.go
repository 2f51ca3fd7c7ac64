package catalog

import "github.com/shopspring/decimal"

// Reference catalog data. Used to seed the in-memory store and, when
// migration is enabled, the MySQL store.
var (
	FixtureProducts = []Product{
		{ID: 1, Name: "iPhone", Price: decimal.RequireFromString("100.00")},
		{ID: 2, Name: "Headphones", Price: decimal.RequireFromString("20.00")},
		{ID: 3, Name: "Case", Price: decimal.RequireFromString("10.00")},
	}

	FixtureTaxes = []Tax{
		{Code: "DE012345678", Rate: decimal.RequireFromString("19.00")},
		{Code: "IT01234567890", Rate: decimal.RequireFromString("22.00")},
		{Code: "GR012345678", Rate: decimal.RequireFromString("24.00")},
		{Code: "FRXY0123456789", Rate: decimal.RequireFromString("20.00")},
	}

	FixtureCoupons = []Coupon{
		{Code: "P10", Discount: decimal.RequireFromString("10.00")},
		{Code: "P30", Discount: decimal.RequireFromString("30.00")},
		{Code: "P50", Discount: decimal.RequireFromString("50.00")},
	}
)

// NewFixtureStore creates an in-memory catalog seeded with the
// reference data.
func NewFixtureStore() *MemoryStore {
	s := NewMemoryStore()
	for _, p := range FixtureProducts {
		s.AddProduct(p)
	}
	for _, t := range FixtureTaxes {
		s.AddTax(t)
	}
	for _, c := range FixtureCoupons {
		s.AddCoupon(c)
	}
	return s
}
