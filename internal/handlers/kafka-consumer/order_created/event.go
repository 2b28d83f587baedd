package order_created

import (
	"encoding/json"
	"errors"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

var errMissingFields = errors.New("missing required fields")

// createdEvent сообщение топика order.created, поля как в POST /orders.
type createdEvent struct {
	OrderID       *int64       `json:"order_id"`
	Weight        *json.Number `json:"weight"`
	Region        *int32       `json:"region"`
	DeliveryHours []string     `json:"delivery_hours"`
}

func (e *createdEvent) toEntity() (entities.OrderCreate, error) {
	if e.OrderID == nil || e.Weight == nil || e.Region == nil {
		return entities.OrderCreate{}, errMissingFields
	}

	weight, err := decimal.NewFromString(e.Weight.String())
	if err != nil {
		return entities.OrderCreate{}, err
	}

	deliveryHours := e.DeliveryHours
	if deliveryHours == nil {
		deliveryHours = []string{}
	}

	return entities.OrderCreate{
		ID:            *e.OrderID,
		Weight:        weight,
		Region:        *e.Region,
		DeliveryHours: deliveryHours,
	}, nil
}
