package courier

import "time"

type CourierDB struct {
	ID           int64
	Category     string
	Rating       *string // NUMERIC читается текстом, чтобы не терять точность
	Earning      int64
	Regions      []int32
	WorkingHours []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
