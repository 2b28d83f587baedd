package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/querier"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image    = "postgres:16-alpine"
	dbName   = "dispatch_test"
	user     = "dispatch"
	password = "dispatch"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// GetQuerier поднимает один контейнер Postgres на пакет тестов и накатывает миграции.
// Контейнер останавливается reaper'ом testcontainers после завершения процесса.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		container, err := tcpostgres.Run(ctx,
			image,
			tcpostgres.WithDatabase(dbName),
			tcpostgres.WithUsername(user),
			tcpostgres.WithPassword(password),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("failed to start postgres testcontainer: %v", err)
		}

		host, err := container.Host(ctx)
		if err != nil {
			log.Fatalf("failed to get container host: %v", err)
		}
		port, err := container.MappedPort(ctx, "5432/tcp")
		if err != nil {
			log.Fatalf("failed to get container port: %v", err)
		}

		cfg := &config.Database{
			Host:     host,
			Port:     port.Port(),
			User:     user,
			Password: password,
			DBName:   dbName,
			SSLMode:  "disable",
		}

		nop := zap_adapter.NewNop()

		connPool, err := postgres.NewConnPool(ctx, nop, cfg)
		if err != nil {
			log.Fatalf("failed to connect to postgres testcontainer: %v", err)
		}

		if err := postgres.Migrate(ctx, nop, connPool); err != nil {
			log.Fatalf("failed to migrate postgres testcontainer: %v", err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := GetQuerier()
	if setupSql == "" {
		return
	}

	_, err := q.Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE completions, order_delivery_hours, orders,
			courier_working_hours, courier_regions, couriers CASCADE;
	`)
	require.NoError(t, err)
}
