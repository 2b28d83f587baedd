package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidCategory       = errors.New("invalid courier type")
	ErrInvalidRegion         = errors.New("invalid region")
	ErrInvalidWorkingHours   = errors.New("invalid working hours")
	ErrImmutableField        = errors.New("field can not be changed")

	ErrCourierNotFound = errors.New("courier not found")
	ErrConflict        = errors.New("resource already exists")
)
