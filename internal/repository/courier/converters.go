package courier

import (
	"fmt"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

func ToDomain(c *CourierDB) (*entities.Courier, error) {
	if c == nil {
		return nil, nil
	}

	courier := &entities.Courier{
		ID:           c.ID,
		Category:     entities.CourierCategory(c.Category),
		Regions:      c.Regions,
		WorkingHours: c.WorkingHours,
		Earning:      c.Earning,
		CreatedAt:    c.CreatedAt.UTC(),
		UpdatedAt:    c.UpdatedAt.UTC(),
	}

	if c.Rating != nil {
		rating, err := decimal.NewFromString(*c.Rating)
		if err != nil {
			return nil, fmt.Errorf("parse rating %q: %w", *c.Rating, err)
		}
		courier.Rating = &rating
	}

	if courier.Regions == nil {
		courier.Regions = []int32{}
	}
	if courier.WorkingHours == nil {
		courier.WorkingHours = []string{}
	}

	return courier, nil
}
