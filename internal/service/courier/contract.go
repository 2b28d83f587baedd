//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	Create(ctx context.Context, courierCreate entities.CourierCreate) error
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	Update(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error)
}

// Reconciler снимает с курьера заказы, переставшие подходить после изменения профиля.
type Reconciler interface {
	Reconcile(ctx context.Context, courierID int64) (*entities.Reconciliation, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
