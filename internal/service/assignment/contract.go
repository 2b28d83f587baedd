//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// FindAssignableOrders незакрепленные заказы по весу и региону, строки блокируются до конца транзакции.
	FindAssignableOrders(ctx context.Context, filter entities.AssignableOrdersFilter) ([]entities.Order, error)
	// ClaimOrders закрепляет только те заказы, которые все еще свободны, и возвращает их id.
	ClaimOrders(ctx context.Context, orderIDs []int64, assignment entities.Assignment) ([]int64, error)
	GetOpenOrdersByCourier(ctx context.Context, courierID int64) ([]entities.Order, error)
	RevokeOrders(ctx context.Context, courierID int64, orderIDs []int64) ([]int64, error)
	// GetLatestOpenAssignmentTime nil, если у курьера нет незавершенных заказов.
	GetLatestOpenAssignmentTime(ctx context.Context, courierID int64) (*time.Time, error)
	CountBacklog(ctx context.Context) (*entities.Backlog, error)
}

type CourierRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
}

type CapacityPolicy interface {
	MaxWeight(category entities.CourierCategory) decimal.Decimal
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
