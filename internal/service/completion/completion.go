package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Service struct {
	repository        Repository
	orderRepository   OrderRepository
	courierRepository CourierRepository
	policy            EarningPolicy
	txManager         TxManager
	scope             entities.RatingScope
}

func New(
	repository Repository,
	orderRepository OrderRepository,
	courierRepository CourierRepository,
	policy EarningPolicy,
	txManager TxManager,
	scope entities.RatingScope,
) *Service {
	if !scope.IsValid() {
		scope = entities.RatingScopeGlobal
	}

	return &Service{
		repository:        repository,
		orderRepository:   orderRepository,
		courierRepository: courierRepository,
		policy:            policy,
		txManager:         txManager,
		scope:             scope,
	}
}

// Complete отмечает заказ выполненным, пересчитывает рейтинг курьера и начисляет заработок.
// Повторный вызов для уже выполненного заказа ничего не меняет.
func (s *Service) Complete(ctx context.Context, completion entities.OrderCompletion) (int64, error) {
	if completion.CourierID <= 0 {
		return 0, ErrInvalidCourierID
	}
	if completion.OrderID <= 0 {
		return 0, ErrInvalidOrderID
	}
	if completion.CompletedAt.IsZero() {
		return 0, ErrInvalidCompleteTime
	}

	var (
		category entities.CourierCategory
		recorded bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		recorded = false

		order, err := s.orderRepository.GetByIDForUpdate(ctx, completion.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !order.IsAssigned() || order.Assignment.CourierID != completion.CourierID {
			return fmt.Errorf("order %d, courier %d: %w", completion.OrderID, completion.CourierID, ErrNotAssigned)
		}
		if order.IsCompleted() {
			return nil
		}
		category = order.Assignment.Category

		if err := s.courierRepository.LockForCompletion(ctx, completion.CourierID); err != nil {
			return fmt.Errorf("lock courier: %w", err)
		}

		record, err := s.newRecord(ctx, order, completion)
		if err != nil {
			return err
		}

		if err := s.repository.Create(ctx, *record); err != nil {
			return fmt.Errorf("create completion: %w", err)
		}

		leadTimes, err := s.repository.GetRegionLeadTimes(ctx, completion.CourierID, s.scope)
		if err != nil {
			return fmt.Errorf("get region lead times: %w", err)
		}
		rating := Rating(leadTimes)
		if rating == nil {
			return fmt.Errorf("no lead times for courier %d after completion", completion.CourierID)
		}

		earning := BaseEarning * s.policy.EarningMultiplier(category)
		if err := s.courierRepository.UpdateRatingEarning(ctx, completion.CourierID, *rating, earning); err != nil {
			return fmt.Errorf("update rating and earning: %w", err)
		}

		recorded = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrClockAnomaly) {
			ClockAnomaliesTotal.Inc()
		}
		return 0, err
	}

	if recorded {
		OrdersCompletedTotal.WithLabelValues(category.String()).Inc()
	}
	return completion.OrderID, nil
}

// newRecord отсчет ведется от предыдущего выполнения курьера в том же регионе,
// а если его нет - от времени назначения заказа.
func (s *Service) newRecord(ctx context.Context, order *entities.Order, completion entities.OrderCompletion) (*entities.CompletionRecord, error) {
	previous, err := s.repository.GetLatestInRegion(ctx, completion.CourierID, order.Region)
	if err != nil {
		return nil, fmt.Errorf("get latest completion in region: %w", err)
	}

	start := order.Assignment.AssignedAt
	seq := int64(1)
	if previous != nil {
		start = previous.CompletedAt
		seq = previous.RegionSeq + 1
	}

	// целые секунды с отбрасыванием дробной части, -0.5s это 0
	leadTimeSeconds := int64(completion.CompletedAt.Sub(start) / time.Second)
	if leadTimeSeconds < 0 {
		return nil, fmt.Errorf("%w: order %d completed at %s, start %s",
			ErrClockAnomaly, order.ID, completion.CompletedAt.Format(time.RFC3339Nano), start.Format(time.RFC3339Nano))
	}

	return &entities.CompletionRecord{
		CourierID:       completion.CourierID,
		OrderID:         order.ID,
		Region:          order.Region,
		RegionSeq:       seq,
		CompletedAt:     completion.CompletedAt.UTC(),
		LeadTimeSeconds: leadTimeSeconds,
	}, nil
}
