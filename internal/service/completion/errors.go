package completion

import (
	"errors"

	"dispatch/internal/service/courier"
	"dispatch/internal/service/order"
)

var (
	ErrInvalidCourierID    = errors.New("invalid courier id")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidCompleteTime = errors.New("invalid complete time")

	ErrOrderNotFound   = order.ErrOrderNotFound
	ErrCourierNotFound = courier.ErrCourierNotFound
	ErrNotAssigned     = errors.New("order is not assigned to courier")

	// ErrClockAnomaly время выполнения раньше начала отсчета
	ErrClockAnomaly = errors.New("complete time is before lead time start")
)
