//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=kafka_test
package kafka

import (
	"dispatch/pkg/logger"
)

type consumerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
