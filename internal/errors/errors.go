// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeNotFound indicates a catalog record not found error
	TypeNotFound Type = "NOT_FOUND"

	// TypeNotSupported indicates an unsupported payment backend
	TypeNotSupported Type = "NOT_SUPPORTED"

	// TypePayment indicates a payment that was not processed
	TypePayment Type = "PAYMENT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeStorage indicates a catalog storage error
	TypeStorage Type = "STORAGE_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// ProductNotFound creates the error for an unresolvable product id
func ProductNotFound(id int64) *Error {
	return New(TypeNotFound, "Product not found").WithContext("product_id", id)
}

// TaxCodeNotFound creates the error for an unresolvable tax code
func TaxCodeNotFound(code string) *Error {
	return New(TypeNotFound, "Tax code not found").WithContext("tax_code", code)
}

// CouponCodeNotFound creates the error for an unresolvable coupon code
func CouponCodeNotFound(code string) *Error {
	return New(TypeNotFound, "Coupon code not found").WithContext("coupon_code", code)
}

// UnsupportedBackend creates the error for a backend name outside the registry
func UnsupportedBackend(name string) *Error {
	return New(TypeNotSupported, "Payment processor not supported").WithContext("backend", name)
}

// PaymentNotProcessed wraps a gateway failure, preserving its diagnostic message
func PaymentNotProcessed(gatewayMessage string, cause error) *Error {
	return Wrap(TypePayment, gatewayMessage, cause)
}

// Storage wraps a catalog storage failure
func Storage(message string, cause error) *Error {
	return Wrap(TypeStorage, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}

// IsClientError reports whether the error is client-correctable
// (bad input, missing record, unsupported backend, rejected payment).
func IsClientError(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	switch e.Type {
	case TypeInput, TypeNotFound, TypeNotSupported, TypePayment:
		return true
	}
	return false
}
