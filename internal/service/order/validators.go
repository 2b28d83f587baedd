package order

import (
	"fmt"

	"dispatch/internal/entities"
	"dispatch/pkg/timewindow"
	"github.com/shopspring/decimal"
)

// maxWeight самый тяжелый заказ, который может увезти хоть какой-то курьер.
var maxWeight = decimal.NewFromInt(50)

// weightPlaces точность хранения веса, NUMERIC(5,2)
const weightPlaces = 2

// normalizeWeight округляет вес до сотых, диапазон проверяется уже после округления.
func normalizeWeight(w decimal.Decimal) decimal.Decimal {
	return w.Round(weightPlaces)
}

func validateCreate(o entities.OrderCreate) error {
	if o.ID <= 0 {
		return ErrInvalidOrderID
	}
	if err := validateWeight(o.Weight); err != nil {
		return err
	}
	if o.Region <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRegion, o.Region)
	}
	for _, h := range o.DeliveryHours {
		if err := timewindow.Validate(h); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDeliveryHours, err)
		}
	}
	return nil
}

func validateWeight(w decimal.Decimal) error {
	if !w.IsPositive() || w.GreaterThan(maxWeight) {
		return fmt.Errorf("%w: %s must be in (0, %s]", ErrInvalidWeight, w, maxWeight)
	}
	return nil
}
