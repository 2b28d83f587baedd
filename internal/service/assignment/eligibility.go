package assignment

import (
	"fmt"
	"slices"

	"dispatch/internal/entities"
	"dispatch/pkg/timewindow"
	"github.com/shopspring/decimal"
)

// profile ограничения курьера, по которым проверяется каждый заказ.
type profile struct {
	courierID int64
	category  entities.CourierCategory
	maxWeight decimal.Decimal
	regions   map[int32]struct{}
	working   []timewindow.Window
}

func newProfile(courier *entities.Courier, maxWeight decimal.Decimal) (*profile, error) {
	working, err := timewindow.ParseAll(courier.WorkingHours)
	if err != nil {
		return nil, fmt.Errorf("%w: courier %d: %w", ErrCorruptedWindow, courier.ID, err)
	}

	regions := make(map[int32]struct{}, len(courier.Regions))
	for _, region := range courier.Regions {
		regions[region] = struct{}{}
	}

	return &profile{
		courierID: courier.ID,
		category:  courier.Category,
		maxWeight: maxWeight,
		regions:   regions,
		working:   working,
	}, nil
}

func (p *profile) regionList() []int32 {
	regions := make([]int32, 0, len(p.regions))
	for region := range p.regions {
		regions = append(regions, region)
	}
	slices.Sort(regions)
	return regions
}

// isEligible вес, регион и пересечение окон. Заказ без окон доставки подходит всегда.
func (p *profile) isEligible(order *entities.Order) (bool, error) {
	if order.Weight.GreaterThan(p.maxWeight) {
		return false, nil
	}
	if _, ok := p.regions[order.Region]; !ok {
		return false, nil
	}

	delivery, err := timewindow.ParseAll(order.DeliveryHours)
	if err != nil {
		return false, fmt.Errorf("%w: order %d: %w", ErrCorruptedWindow, order.ID, err)
	}

	return timewindow.AnyOverlap(p.working, delivery), nil
}

// eligibleIDs отсортированные id подходящих заказов без повторов.
func (p *profile) eligibleIDs(orders []entities.Order) ([]int64, error) {
	seen := make(map[int64]struct{}, len(orders))
	ids := make([]int64, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		if _, ok := seen[order.ID]; ok {
			continue
		}
		seen[order.ID] = struct{}{}

		ok, err := p.isEligible(order)
		if err != nil {
			return nil, err
		}
		if ok {
			ids = append(ids, order.ID)
		}
	}

	slices.Sort(ids)
	return ids, nil
}

// partition делит заказы курьера на оставшиеся и подлежащие снятию.
func (p *profile) partition(orders []entities.Order) (keep, revoke []int64, err error) {
	keep = []int64{}
	revoke = []int64{}
	for i := range orders {
		ok, err := p.isEligible(&orders[i])
		if err != nil {
			return nil, nil, err
		}
		if ok {
			keep = append(keep, orders[i].ID)
		} else {
			revoke = append(revoke, orders[i].ID)
		}
	}

	slices.Sort(keep)
	slices.Sort(revoke)
	return keep, revoke, nil
}
