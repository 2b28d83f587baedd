package backlog_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UnassignedOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dispatch_unassigned_orders",
		Help: "Number of orders waiting for a courier",
	})

	OpenAssignments = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dispatch_open_assignments",
		Help: "Number of assigned orders not completed yet",
	})
)
