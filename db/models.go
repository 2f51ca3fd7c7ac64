package db

import (
	"github.com/shopspring/decimal"

	"checkout/core/catalog"
)

// ProductModel maps to the products table
type ProductModel struct {
	ID    int64           `gorm:"primaryKey"`
	Name  string          `gorm:"size:255"`
	Price decimal.Decimal `gorm:"type:decimal(10,2)"`
}

// TableName returns the table name
func (ProductModel) TableName() string { return "products" }

// TaxModel maps to the taxes table
type TaxModel struct {
	ID   int64           `gorm:"primaryKey;autoIncrement"`
	Code string          `gorm:"size:20;uniqueIndex"`
	Rate decimal.Decimal `gorm:"type:decimal(5,2)"`
}

// TableName returns the table name
func (TaxModel) TableName() string { return "taxes" }

// CouponModel maps to the coupons table
type CouponModel struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	Code     string          `gorm:"size:5;uniqueIndex"`
	Discount decimal.Decimal `gorm:"type:decimal(5,2)"`
}

// TableName returns the table name
func (CouponModel) TableName() string { return "coupons" }

func (m *ProductModel) toDomain() *catalog.Product {
	return &catalog.Product{ID: m.ID, Name: m.Name, Price: m.Price}
}

func (m *TaxModel) toDomain() *catalog.Tax {
	return &catalog.Tax{Code: m.Code, Rate: m.Rate}
}

func (m *CouponModel) toDomain() *catalog.Coupon {
	return &catalog.Coupon{Code: m.Code, Discount: m.Discount}
}
