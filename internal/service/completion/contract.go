//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=completion_test
package completion

import (
	"context"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// GetLatestInRegion nil, если курьер еще не выполнял заказы в регионе.
	GetLatestInRegion(ctx context.Context, courierID int64, region int32) (*entities.CompletionRecord, error)
	Create(ctx context.Context, record entities.CompletionRecord) error
	GetRegionLeadTimes(ctx context.Context, courierID int64, scope entities.RatingScope) ([]entities.RegionLeadTime, error)
}

type OrderRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error)
}

type CourierRepository interface {
	LockForCompletion(ctx context.Context, id int64) error
	UpdateRatingEarning(ctx context.Context, id int64, rating decimal.Decimal, earningDelta int64) error
}

type EarningPolicy interface {
	EarningMultiplier(category entities.CourierCategory) int64
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
