package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidRegion         = errors.New("invalid region")
	ErrInvalidDeliveryHours  = errors.New("invalid delivery hours")

	ErrOrderNotFound = errors.New("order not found")
	ErrConflict      = errors.New("resource already exists")
)
