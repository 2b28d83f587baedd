package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            int64
	Weight        decimal.Decimal
	Region        int32
	DeliveryHours []string
	Assignment    *Assignment
	CompletedAt   *time.Time
	CreatedAt     time.Time
}

// Assignment заказ закреплен за курьером. Категория фиксируется на момент назначения.
type Assignment struct {
	CourierID  int64
	Category   CourierCategory
	AssignedAt time.Time
}

func (o *Order) IsAssigned() bool {
	return o.Assignment != nil
}

func (o *Order) IsCompleted() bool {
	return o.CompletedAt != nil
}

type OrderCreate struct {
	ID            int64
	Weight        decimal.Decimal
	Region        int32
	DeliveryHours []string
}

// AssignableOrdersFilter предфильтр кандидатов на стороне хранилища.
type AssignableOrdersFilter struct {
	MaxWeight decimal.Decimal
	Regions   []int32
}

type AssignmentResult struct {
	CourierID  int64
	OrderIDs   []int64
	AssignedAt time.Time
}

type Reconciliation struct {
	CourierID  int64
	RevokedIDs []int64
	KeptIDs    []int64
}

type OrderCompletion struct {
	CourierID   int64
	OrderID     int64
	CompletedAt time.Time
}

type Backlog struct {
	Unassigned      int64
	OpenAssignments int64
}
