package tx

import (
	"context"
	"errors"
	"time"

	"dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	trmcontext "github.com/avito-tech/go-transaction-manager/trm/context"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
)

// DefaultRetryConfig повторяет serializable транзакцию при конфликте сериализации.
func DefaultRetryConfig() retrier.Config {
	return retrier.Config{
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     200 * time.Millisecond,
		MaxElapsedTime:  3 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      5,
		ShouldRetry:     IsSerializationFailure,
	}
}

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal *manager.Manager
	retrier  retrier.Retrier
}

// New создаёт новый менеджер транзакций.
// Если retrier nil, используется DefaultRetryConfig.
func New(db pgxv5.Transactional, r retrier.Retrier) *Manager {
	if r == nil {
		r = backoff_adapter.New(DefaultRetryConfig())
	}
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		retrier:  r,
	}
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Do выполняет fn в serializable транзакции.
// Вложенный вызов присоединяется к внешней транзакции и не ретраится: повтор делает только самый внешний Do.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if trmcontext.DefaultManager.Default(ctx) != nil {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	}

	return m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	})
}

func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrSerializationFailure || pgErr.Code == pgErrDeadlockDetected
	}
	return false
}
