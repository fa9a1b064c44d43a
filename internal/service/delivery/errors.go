package delivery

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrUnknownStatus     = errors.New("unknown delivery status")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrNoActiveDrivers  = errors.New("no active drivers available")
)
