//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderCreate entities.OrderCreate) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
