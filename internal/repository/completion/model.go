package completion

import "time"

type CompletionDB struct {
	CourierID       int64
	OrderID         int64
	RegionID        int32
	RegionSeq       int64
	CompletedAt     time.Time
	LeadTimeSeconds int64
}

type RegionLeadTimeDB struct {
	RegionID     int32
	TotalSeconds int64
	Count        int64
}
