package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrBillNotFound       = errors.New("bill not found")
	ErrInvalidUnit        = errors.New("unit must be kg or litre")
	ErrNoBillLines        = errors.New("bill must have at least one line")
	ErrInvalidPacking     = errors.New("packing does not belong to the product's packing set")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrNegativeRate       = errors.New("rate must not be negative")
	ErrNegativeDiscount   = errors.New("discount must not be negative")
	ErrEmailNotConfigured = errors.New("email delivery is not configured")
)
