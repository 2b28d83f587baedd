//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"dispatch/internal/handlers/tasks/backlog_metrics"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/capacity"
	completionRepo "dispatch/internal/repository/completion"
	courierRepo "dispatch/internal/repository/courier"
	orderRepo "dispatch/internal/repository/order"
	assignmentService "dispatch/internal/service/assignment"
	completionService "dispatch/internal/service/completion"
	courierService "dispatch/internal/service/courier"
	orderService "dispatch/internal/service/order"
	"dispatch/pkg/logger"
	"dispatch/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideCourierRepository,
	provideOrderRepository,
	provideCompletionRepository,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		capacity.New,

		provideAssignmentService,
		provideCourierService,
		provideOrderService,
		provideCompletionService,

		provideBacklogMetricsInterval,
		provideBacklogMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Service)),
		wire.Bind(new(ServiceCompletion), new(*completionService.Service)),

		wire.Bind(new(assignmentService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(assignmentService.CapacityPolicy), new(*capacity.Policy)),
		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.Reconciler), new(*assignmentService.Service)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(completionService.Repository), new(*completionRepo.Repository)),
		wire.Bind(new(completionService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(completionService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(completionService.EarningPolicy), new(*capacity.Policy)),

		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(completionService.TxManager), new(*tx.Manager)),

		wire.Bind(new(backlog_metrics.Service), new(*assignmentService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-created)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOrderRepository,

		provideOrderService,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
