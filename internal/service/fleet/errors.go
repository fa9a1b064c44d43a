package fleet

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTruckID        = errors.New("invalid truck id")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidHelperID       = errors.New("invalid helper id")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrTruckNotFound  = errors.New("truck not found")
	ErrDriverNotFound = errors.New("driver not found")
	ErrHelperNotFound = errors.New("helper not found")
)
