package order

import "errors"

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
)
