package order

import "time"

type OrderDB struct {
	ID              int64
	Weight          string
	RegionID        int32
	CourierID       *int64
	CourierCategory *string
	AssignedAt      *time.Time
	CreatedAt       time.Time
	CompletedAt     *time.Time
	DeliveryHours   []string
}
