package backlog_metrics

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

// BacklogMetrics публикует размер очереди заказов. Только чтение, состояние заказов не меняет.
type BacklogMetrics struct {
	log      handlerLogger
	service  Service
	interval time.Duration
}

func New(log handlerLogger, service Service, interval time.Duration) *BacklogMetrics {
	return &BacklogMetrics{
		log:      log.With(logger.NewField("task", "backlog metrics")),
		service:  service,
		interval: interval,
	}
}

func (b *BacklogMetrics) Interval() time.Duration {
	return b.interval
}

func (b *BacklogMetrics) Do(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout())
	defer cancel()

	backlog, err := b.service.Backlog(ctx)
	if err != nil {
		return err
	}

	UnassignedOrders.Set(float64(backlog.Unassigned))
	OpenAssignments.Set(float64(backlog.OpenAssignments))

	b.log.Info("backlog",
		logger.NewField("unassigned", backlog.Unassigned),
		logger.NewField("open_assignments", backlog.OpenAssignments),
	)
	return nil
}

func (b *BacklogMetrics) Info() string {
	return "backlog metrics"
}

// timeout не больше интервала, чтобы запуски не накладывались
func (b *BacklogMetrics) timeout() time.Duration {
	if b.interval <= 0 {
		return 30 * time.Second
	}
	return b.interval
}
