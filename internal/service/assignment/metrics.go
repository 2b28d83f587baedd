package assignment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersAssignedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_orders_assigned_total",
			Help: "Total number of orders assigned to couriers",
		},
		[]string{"category"},
	)

	OrdersRevokedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_orders_revoked_total",
			Help: "Total number of assignments revoked after a courier profile change",
		},
		[]string{"category"},
	)
)
