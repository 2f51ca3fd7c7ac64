package db

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"checkout/core/catalog"
	"checkout/internal/logging"
)

// CachedStore is a redis read-through decorator over a catalog store.
// Only successful lookups are cached; not-found and storage errors
// always hit the inner store. A cache outage degrades to direct reads.
type CachedStore struct {
	inner catalog.Store
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedStore wraps a store with a redis cache
func NewCachedStore(inner catalog.Store, rdb *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{inner: inner, rdb: rdb, ttl: ttl}
}

// FindProductByID resolves a product, preferring the cache
func (s *CachedStore) FindProductByID(ctx context.Context, id int64) (*catalog.Product, error) {
	key := fmt.Sprintf("catalog:product:%d", id)

	var cached catalog.Product
	if s.get(ctx, key, &cached) {
		return &cached, nil
	}

	product, err := s.inner.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.set(ctx, key, product)
	return product, nil
}

// FindTaxByCode resolves a tax rate, preferring the cache
func (s *CachedStore) FindTaxByCode(ctx context.Context, code string) (*catalog.Tax, error) {
	key := "catalog:tax:" + code

	var cached catalog.Tax
	if s.get(ctx, key, &cached) {
		return &cached, nil
	}

	tax, err := s.inner.FindTaxByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	s.set(ctx, key, tax)
	return tax, nil
}

// FindCouponByCode resolves a coupon, preferring the cache
func (s *CachedStore) FindCouponByCode(ctx context.Context, code string) (*catalog.Coupon, error) {
	key := "catalog:coupon:" + code

	var cached catalog.Coupon
	if s.get(ctx, key, &cached) {
		return &cached, nil
	}

	coupon, err := s.inner.FindCouponByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	s.set(ctx, key, coupon)
	return coupon, nil
}

func (s *CachedStore) get(ctx context.Context, key string, out interface{}) bool {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !stderrors.Is(err, redis.Nil) {
			logging.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logging.Warn("catalog cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *CachedStore) set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
		logging.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
