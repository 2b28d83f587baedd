package completion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCompletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_orders_completed_total",
			Help: "Total number of completed orders",
		},
		[]string{"category"},
	)

	ClockAnomaliesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_completion_clock_anomalies_total",
			Help: "Total number of completions rejected because complete time precedes lead time start",
		},
	)
)
