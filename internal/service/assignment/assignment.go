package assignment

import (
	"context"
	"fmt"
	"slices"
	"time"

	"dispatch/internal/entities"
)

type Service struct {
	repository        Repository
	courierRepository CourierRepository
	policy            CapacityPolicy
	txManager         TxManager
	now               func() time.Time // с точностью до микросекунд, как timestamptz
}

func New(
	repository Repository,
	courierRepository CourierRepository,
	policy CapacityPolicy,
	txManager TxManager,
) *Service {
	return &Service{
		repository:        repository,
		courierRepository: courierRepository,
		policy:            policy,
		txManager:         txManager,
		now:               func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Assign закрепляет за курьером все свободные заказы, подходящие по весу, региону и окнам доставки.
// Все заказы одного вызова получают общее время назначения. Если новых заказов нет, возвращается
// время последнего незавершенного назначения курьера, а если их тоже нет - текущее время.
func (s *Service) Assign(ctx context.Context, courierID int64) (*entities.AssignmentResult, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	var (
		result   *entities.AssignmentResult
		category entities.CourierCategory
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := s.courierRepository.GetByID(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}
		category = courier.Category

		p, err := newProfile(courier, s.policy.MaxWeight(courier.Category))
		if err != nil {
			return err
		}

		assignedAt := s.now()

		claimed, err := s.claim(ctx, p, assignedAt)
		if err != nil {
			return err
		}

		if len(claimed) == 0 {
			latest, err := s.repository.GetLatestOpenAssignmentTime(ctx, courierID)
			if err != nil {
				return fmt.Errorf("get latest assignment time: %w", err)
			}
			if latest != nil {
				assignedAt = *latest
			}
		}

		result = &entities.AssignmentResult{
			CourierID:  courierID,
			OrderIDs:   claimed,
			AssignedAt: assignedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.OrderIDs) > 0 {
		OrdersAssignedTotal.WithLabelValues(category.String()).Add(float64(len(result.OrderIDs)))
	}
	return result, nil
}

// Reconcile перепроверяет незавершенные заказы курьера по его текущему профилю
// и снимает те, что больше не подходят.
func (s *Service) Reconcile(ctx context.Context, courierID int64) (*entities.Reconciliation, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	var (
		result   *entities.Reconciliation
		category entities.CourierCategory
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := s.courierRepository.GetByID(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}
		category = courier.Category

		p, err := newProfile(courier, s.policy.MaxWeight(courier.Category))
		if err != nil {
			return err
		}

		orders, err := s.repository.GetOpenOrdersByCourier(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get open orders: %w", err)
		}

		keep, revoke, err := p.partition(orders)
		if err != nil {
			return err
		}

		revoked := []int64{}
		if len(revoke) > 0 {
			revoked, err = s.repository.RevokeOrders(ctx, courierID, revoke)
			if err != nil {
				return fmt.Errorf("revoke orders: %w", err)
			}
			slices.Sort(revoked)
		}

		result = &entities.Reconciliation{
			CourierID:  courierID,
			RevokedIDs: revoked,
			KeptIDs:    keep,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.RevokedIDs) > 0 {
		OrdersRevokedTotal.WithLabelValues(category.String()).Add(float64(len(result.RevokedIDs)))
	}
	return result, nil
}

func (s *Service) Backlog(ctx context.Context) (*entities.Backlog, error) {
	backlog, err := s.repository.CountBacklog(ctx)
	if err != nil {
		return nil, fmt.Errorf("count backlog: %w", err)
	}
	return backlog, nil
}

// claim без регионов или кандидатов до проверки окон дело не доходит.
func (s *Service) claim(ctx context.Context, p *profile, assignedAt time.Time) ([]int64, error) {
	if len(p.regions) == 0 {
		return []int64{}, nil
	}

	candidates, err := s.repository.FindAssignableOrders(ctx, entities.AssignableOrdersFilter{
		MaxWeight: p.maxWeight,
		Regions:   p.regionList(),
	})
	if err != nil {
		return nil, fmt.Errorf("find assignable orders: %w", err)
	}
	if len(candidates) == 0 {
		return []int64{}, nil
	}

	ids, err := p.eligibleIDs(candidates)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []int64{}, nil
	}

	claimed, err := s.repository.ClaimOrders(ctx, ids, entities.Assignment{
		CourierID:  p.courierID,
		Category:   p.category,
		AssignedAt: assignedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("claim orders: %w", err)
	}

	slices.Sort(claimed)
	return claimed, nil
}
