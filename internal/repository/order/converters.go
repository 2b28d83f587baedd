package order

import (
	"fmt"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	weight, err := decimal.NewFromString(o.Weight)
	if err != nil {
		return nil, fmt.Errorf("parse weight %q: %w", o.Weight, err)
	}

	order := &entities.Order{
		ID:            o.ID,
		Weight:        weight,
		Region:        o.RegionID,
		DeliveryHours: o.DeliveryHours,
		CreatedAt:     o.CreatedAt.UTC(),
	}
	if order.DeliveryHours == nil {
		order.DeliveryHours = []string{}
	}

	if o.CourierID != nil && o.AssignedAt != nil {
		assignment := &entities.Assignment{
			CourierID:  *o.CourierID,
			AssignedAt: o.AssignedAt.UTC(),
		}
		if o.CourierCategory != nil {
			assignment.Category = entities.CourierCategory(*o.CourierCategory)
		}
		order.Assignment = assignment
	}

	if o.CompletedAt != nil {
		completedAt := o.CompletedAt.UTC()
		order.CompletedAt = &completedAt
	}

	return order, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		order, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	return result, nil
}
