//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=backlog_metrics_test
package backlog_metrics

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Service interface {
	Backlog(ctx context.Context) (*entities.Backlog, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
