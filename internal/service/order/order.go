package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

type Service struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateOrders невалидные и уже существующие заказы попадают в Failed,
// остальные сохраняются независимо друг от друга.
func (s *Service) CreateOrders(ctx context.Context, orders []entities.OrderCreate) (*entities.BatchResult, error) {
	if len(orders) == 0 {
		return nil, ErrMissingRequiredFields
	}

	result := &entities.BatchResult{
		Created: make([]int64, 0, len(orders)),
	}

	for _, o := range orders {
		err := s.CreateOrder(ctx, o)
		switch {
		case err == nil:
			result.Created = append(result.Created, o.ID)
		case isItemError(err):
			result.Failed = append(result.Failed, entities.BatchItemError{ID: o.ID, Err: err})
		default:
			return nil, err
		}
	}

	return result, nil
}

func (s *Service) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) error {
	orderCreate.Weight = normalizeWeight(orderCreate.Weight)
	if err := validateCreate(orderCreate); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.Create(ctx, orderCreate)
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return err
		}
		return fmt.Errorf("create order %d: %w", orderCreate.ID, err)
	}

	return nil
}

func isItemError(err error) bool {
	return errors.Is(err, ErrInvalidOrderID) ||
		errors.Is(err, ErrInvalidWeight) ||
		errors.Is(err, ErrInvalidRegion) ||
		errors.Is(err, ErrInvalidDeliveryHours) ||
		errors.Is(err, ErrConflict)
}
