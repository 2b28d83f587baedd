package capacity

import (
	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

var (
	footMaxWeight = decimal.NewFromInt(10)
	bikeMaxWeight = decimal.NewFromInt(15)
	carMaxWeight  = decimal.NewFromInt(50)
)

const (
	footMultiplier int64 = 2
	bikeMultiplier int64 = 5
	carMultiplier  int64 = 9
)

// Policy таблица грузоподъемности и коэффициентов заработка по категории курьера.
// Неизвестная категория получает тариф car.
type Policy struct{}

func New() *Policy {
	return &Policy{}
}

func (p *Policy) MaxWeight(category entities.CourierCategory) decimal.Decimal {
	switch category {
	case entities.Foot:
		return footMaxWeight
	case entities.Bike:
		return bikeMaxWeight
	default:
		return carMaxWeight
	}
}

func (p *Policy) EarningMultiplier(category entities.CourierCategory) int64 {
	switch category {
	case entities.Foot:
		return footMultiplier
	case entities.Bike:
		return bikeMultiplier
	default:
		return carMultiplier
	}
}
