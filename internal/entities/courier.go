package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type CourierCategory string

const (
	Foot CourierCategory = "foot"
	Bike CourierCategory = "bike"
	Car  CourierCategory = "car"
)

func (c CourierCategory) String() string {
	return string(c)
}

func (c CourierCategory) IsValid() bool {
	switch c {
	case Foot, Bike, Car:
		return true
	default:
		return false
	}
}

type Courier struct {
	ID           int64
	Category     CourierCategory
	Regions      []int32
	WorkingHours []string
	Rating       *decimal.Decimal // nil до первого выполненного заказа
	Earning      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CourierCreate struct {
	ID           int64
	Category     CourierCategory
	Regions      []int32
	WorkingHours []string
}

// CourierModify частичное обновление профиля, nil поле не меняется.
// ID и Category присутствуют только для того, чтобы отклонить попытку их изменить.
type CourierModify struct {
	ID           int64
	NewID        *int64
	Category     *CourierCategory
	Regions      *[]int32
	WorkingHours *[]string
}

func (m CourierModify) HasProfileChanges() bool {
	return m.Regions != nil || m.WorkingHours != nil
}
