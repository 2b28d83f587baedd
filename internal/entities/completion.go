package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type CompletionRecord struct {
	CourierID       int64
	OrderID         int64
	Region          int32
	RegionSeq       int64
	CompletedAt     time.Time
	LeadTimeSeconds int64
}

type RegionLeadTime struct {
	Region       int32
	TotalSeconds int64
	Count        int64
}

func (r RegionLeadTime) Average() decimal.Decimal {
	if r.Count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(r.TotalSeconds).Div(decimal.NewFromInt(r.Count))
}

type RatingScope string

const (
	// RatingScopeGlobal средние по региону считаются по всем курьерам
	RatingScopeGlobal  RatingScope = "global"
	RatingScopeCourier RatingScope = "courier"
)

func (s RatingScope) IsValid() bool {
	return s == RatingScopeGlobal || s == RatingScopeCourier
}

// BatchItemError невалидный или конфликтующий элемент пачки.
type BatchItemError struct {
	ID  int64
	Err error
}

type BatchResult struct {
	Created []int64
	Failed  []BatchItemError
}

func (b BatchResult) HasFailures() bool {
	return len(b.Failed) > 0
}
