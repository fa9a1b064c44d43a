package payment

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidIntentID   = errors.New("invalid payment intent id")
	ErrInvalidMethod     = errors.New("invalid payment method")

	ErrPaymentNotFound      = errors.New("payment not found")
	ErrClientNotFound       = errors.New("client not found")
	ErrPaymentAlreadyExists = errors.New("active payment already exists for delivery")
	ErrDeliveryCancelled    = errors.New("cancelled delivery cannot be billed")
)
