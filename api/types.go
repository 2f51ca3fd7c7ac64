// Package api - Thin HTTP layer over the pricing and purchase core.
// The API is only responsible for input ingestion, validation, and
// output serialization. It never performs price math.
package api

// CalculatePriceRequest is the POST /calculate-price payload
type CalculatePriceRequest struct {
	// Product is the product id
	Product int64 `json:"product"`

	// TaxNumber is the country tax code
	TaxNumber string `json:"taxNumber"`

	// CouponCode is optional; empty means no discount
	CouponCode string `json:"couponCode,omitempty"`
}

// PurchaseRequest is the POST /purchase payload
type PurchaseRequest struct {
	// Product is the product id
	Product int64 `json:"product"`

	// TaxNumber is the country tax code
	TaxNumber string `json:"taxNumber"`

	// CouponCode is optional; empty means no discount
	CouponCode string `json:"couponCode,omitempty"`

	// PaymentProcessor names the payment backend
	PaymentProcessor string `json:"paymentProcessor"`
}

// PriceResponse is the calculate-price response body
type PriceResponse struct {
	// Price is the final price, rounded to two decimal places
	Price string `json:"price"`
}

// PurchaseResponse is the purchase response body
type PurchaseResponse struct {
	// PaymentProcessed reports whether the gateway accepted the payment
	PaymentProcessed bool `json:"payment_processed"`
}

// DataEnvelope wraps successful responses
type DataEnvelope struct {
	Data interface{} `json:"data"`
}

// ErrorEnvelope wraps error responses
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the error code and message
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
