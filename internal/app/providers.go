package app

import (
	"context"
	"time"

	"dispatch/internal/handlers/rest/courier_get"
	"dispatch/internal/handlers/rest/courier_patch"
	"dispatch/internal/handlers/rest/couriers_post"
	"dispatch/internal/handlers/rest/orders_assign_post"
	"dispatch/internal/handlers/rest/orders_complete_post"
	"dispatch/internal/handlers/rest/orders_post"
	"dispatch/internal/handlers/tasks/backlog_metrics"
	"dispatch/internal/pkg/config"
	completionRepo "dispatch/internal/repository/completion"
	courierRepo "dispatch/internal/repository/courier"
	orderRepo "dispatch/internal/repository/order"
	assignmentService "dispatch/internal/service/assignment"
	completionService "dispatch/internal/service/completion"
	courierService "dispatch/internal/service/courier"
	orderService "dispatch/internal/service/order"
	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BacklogMetricsInterval time.Duration

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceOrder      ServiceOrder
	ServiceAssignment ServiceAssignment
	ServiceCompletion ServiceCompletion
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	couriers_post.Service
	courier_patch.Service
}

type ServiceOrder interface {
	orders_post.Service
}

type ServiceAssignment interface {
	orders_assign_post.Service
}

type ServiceCompletion interface {
	orders_complete_post.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, nil)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCompletionRepository(querier *querier.Querier) *completionRepo.Repository {
	return completionRepo.New(querier)
}

func provideAssignmentService(
	repository assignmentService.Repository,
	courierRepository assignmentService.CourierRepository,
	policy assignmentService.CapacityPolicy,
	txManager assignmentService.TxManager,
) *assignmentService.Service {
	return assignmentService.New(repository, courierRepository, policy, txManager)
}

func provideCourierService(
	log logger.Logger,
	repository courierService.Repository,
	reconciler courierService.Reconciler,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(log, repository, reconciler, txManager)
}

func provideOrderService(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, txManager)
}

func provideCompletionService(
	repository completionService.Repository,
	orderRepository completionService.OrderRepository,
	courierRepository completionService.CourierRepository,
	policy completionService.EarningPolicy,
	txManager completionService.TxManager,
	cfg *config.Config,
) *completionService.Service {
	return completionService.New(
		repository,
		orderRepository,
		courierRepository,
		policy,
		txManager,
		cfg.Rating.RegionScope,
	)
}

func provideBacklogMetricsInterval(cfg *config.Config) BacklogMetricsInterval {
	return BacklogMetricsInterval(cfg.Tasks.BacklogMetricsInterval)
}

func provideBacklogMetricsTask(
	log logger.Logger,
	service backlog_metrics.Service,
	interval BacklogMetricsInterval,
) *backlog_metrics.BacklogMetrics {
	return backlog_metrics.New(log, service, time.Duration(interval))
}

func provideTaskList(
	backlogMetricsTask *backlog_metrics.BacklogMetrics,
) []background.Task {
	return []background.Task{
		backlogMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.Start(ctx, log, tasks...)
}
