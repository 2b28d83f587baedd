package completion

import (
	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

const (
	// BaseEarning оплата за заказ до умножения на коэффициент категории
	BaseEarning int64 = 500

	ratingPlaces = 2
)

var (
	leadTimeCeiling = decimal.NewFromInt(3600)
	maxRating       = decimal.NewFromInt(5)
)

// Rating берет регион с минимальным средним временем доставки t и считает
// (3600 - min(t, 3600)) / 3600 * 5 с округлением до сотых.
// Возвращает nil, если выполненных заказов нет.
func Rating(leadTimes []entities.RegionLeadTime) *decimal.Decimal {
	var best *decimal.Decimal
	for _, lt := range leadTimes {
		if lt.Count == 0 {
			continue
		}
		avg := lt.Average()
		if best == nil || avg.LessThan(*best) {
			best = &avg
		}
	}
	if best == nil {
		return nil
	}

	t := decimal.Min(*best, leadTimeCeiling)
	rating := leadTimeCeiling.Sub(t).Div(leadTimeCeiling).Mul(maxRating).Round(ratingPlaces)
	return &rating
}
