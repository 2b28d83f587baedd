package courier

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Courier struct {
	log        serviceLogger
	repository Repository
	reconciler Reconciler
	txManager  TxManager
}

func New(log serviceLogger, repository Repository, reconciler Reconciler, txManager TxManager) *Courier {
	return &Courier{
		log:        log.With(logger.NewField("service", "courier")),
		repository: repository,
		reconciler: reconciler,
		txManager:  txManager,
	}
}

// CreateCouriers каждый курьер создается независимо: невалидные и уже существующие
// попадают в Failed, остальные сохраняются.
func (s *Courier) CreateCouriers(ctx context.Context, couriers []entities.CourierCreate) (*entities.BatchResult, error) {
	if len(couriers) == 0 {
		return nil, ErrMissingRequiredFields
	}

	result := &entities.BatchResult{
		Created: make([]int64, 0, len(couriers)),
	}

	for _, c := range couriers {
		if err := validateCreate(c); err != nil {
			result.Failed = append(result.Failed, entities.BatchItemError{ID: c.ID, Err: err})
			continue
		}
		c.Regions = normalizeRegions(c.Regions)

		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.repository.Create(ctx, c)
		})
		if errors.Is(err, ErrConflict) {
			result.Failed = append(result.Failed, entities.BatchItemError{ID: c.ID, Err: err})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create courier %d: %w", c.ID, err)
		}

		result.Created = append(result.Created, c.ID)
	}

	return result, nil
}

// UpdateCourier заменяет регионы и/или рабочие часы и в той же транзакции
// снимает заказы, которые курьер больше не может доставить.
func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if courierModify.NewID != nil && *courierModify.NewID != courierModify.ID {
		return nil, fmt.Errorf("courier_id: %w", ErrImmutableField)
	}
	if courierModify.Category == nil && !courierModify.HasProfileChanges() {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if courierModify.Category != nil && !courierModify.Category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if courierModify.Regions != nil {
		if err := validateRegions(*courierModify.Regions); err != nil {
			return nil, err
		}
		regions := normalizeRegions(*courierModify.Regions)
		courierModify.Regions = &regions
	}
	if courierModify.WorkingHours != nil {
		if err := validateWorkingHours(*courierModify.WorkingHours); err != nil {
			return nil, err
		}
	}

	var (
		updated        *entities.Courier
		reconciliation *entities.Reconciliation
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, courierModify.ID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}
		if courierModify.Category != nil && *courierModify.Category != current.Category {
			return fmt.Errorf("courier_type: %w", ErrImmutableField)
		}

		if !courierModify.HasProfileChanges() {
			updated = current
			return nil
		}

		updated, err = s.repository.Update(ctx, courierModify)
		if err != nil {
			return fmt.Errorf("update courier: %w", err)
		}

		reconciliation, err = s.reconciler.Reconcile(ctx, courierModify.ID)
		if err != nil {
			return fmt.Errorf("reconcile orders: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if reconciliation != nil && len(reconciliation.RevokedIDs) > 0 {
		s.log.With(
			logger.NewField("courier_id", reconciliation.CourierID),
			logger.NewField("revoked_order_ids", reconciliation.RevokedIDs),
			logger.NewField("kept_orders", len(reconciliation.KeptIDs)),
		).Info("assigned orders revoked after courier update")
	}

	return updated, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

	return courier, nil
}
