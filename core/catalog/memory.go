package catalog

import (
	"context"
	"sync"

	"checkout/internal/errors"
)

// MemoryStore is an in-memory catalog, used by the CLI and as the
// default store when no database is configured. Read-only after
// construction, so safe for concurrent lookups.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[int64]Product
	taxes    map[string]Tax
	coupons  map[string]Coupon
}

// NewMemoryStore creates an empty in-memory catalog
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[int64]Product),
		taxes:    make(map[string]Tax),
		coupons:  make(map[string]Coupon),
	}
}

// AddProduct stores a product
func (s *MemoryStore) AddProduct(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// AddTax stores a tax rate
func (s *MemoryStore) AddTax(t Tax) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taxes[t.Code] = t
}

// AddCoupon stores a coupon
func (s *MemoryStore) AddCoupon(c Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons[c.Code] = c
}

// FindProductByID resolves a product by id
func (s *MemoryStore) FindProductByID(ctx context.Context, id int64) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, errors.ProductNotFound(id)
	}
	return &p, nil
}

// FindTaxByCode resolves a tax rate by its code
func (s *MemoryStore) FindTaxByCode(ctx context.Context, code string) (*Tax, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.taxes[code]
	if !ok {
		return nil, errors.TaxCodeNotFound(code)
	}
	return &t, nil
}

// FindCouponByCode resolves a coupon by its code
func (s *MemoryStore) FindCouponByCode(ctx context.Context, code string) (*Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.coupons[code]
	if !ok {
		return nil, errors.CouponCodeNotFound(code)
	}
	return &c, nil
}
