// Package db provides the MySQL-backed catalog store and its redis
// read-through cache.
package db

import (
	"context"
	stderrors "errors"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"checkout/core/catalog"
	"checkout/internal/errors"
)

// Store is the gorm implementation of catalog.Store
type Store struct {
	db *gorm.DB
}

// Open connects to MySQL and returns a catalog store
func Open(dsn string) (*Store, error) {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to connect to catalog database", err)
	}
	return &Store{db: gdb}, nil
}

// NewStore wraps an existing gorm connection
func NewStore(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// FindProductByID resolves a product by id
func (s *Store) FindProductByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var model ProductModel
	err := s.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ProductNotFound(id)
		}
		return nil, errors.Storage("product lookup failed", err)
	}
	return model.toDomain(), nil
}

// FindTaxByCode resolves a tax rate by its code
func (s *Store) FindTaxByCode(ctx context.Context, code string) (*catalog.Tax, error) {
	var model TaxModel
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.TaxCodeNotFound(code)
		}
		return nil, errors.Storage("tax lookup failed", err)
	}
	return model.toDomain(), nil
}

// FindCouponByCode resolves a coupon by its code
func (s *Store) FindCouponByCode(ctx context.Context, code string) (*catalog.Coupon, error) {
	var model CouponModel
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.CouponCodeNotFound(code)
		}
		return nil, errors.Storage("coupon lookup failed", err)
	}
	return model.toDomain(), nil
}

// Migrate creates the catalog tables and seeds the reference data when
// they are empty.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&ProductModel{}, &TaxModel{}, &CouponModel{}); err != nil {
		return errors.Storage("catalog migration failed", err)
	}

	var count int64
	if err := s.db.Model(&ProductModel{}).Count(&count).Error; err != nil {
		return errors.Storage("catalog migration failed", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range catalog.FixtureProducts {
		if err := s.db.Create(&ProductModel{ID: p.ID, Name: p.Name, Price: p.Price}).Error; err != nil {
			return errors.Storage("product seed failed", err)
		}
	}
	for _, t := range catalog.FixtureTaxes {
		if err := s.db.Create(&TaxModel{Code: t.Code, Rate: t.Rate}).Error; err != nil {
			return errors.Storage("tax seed failed", err)
		}
	}
	for _, c := range catalog.FixtureCoupons {
		if err := s.db.Create(&CouponModel{Code: c.Code, Discount: c.Discount}).Error; err != nil {
			return errors.Storage("coupon seed failed", err)
		}
	}
	return nil
}
