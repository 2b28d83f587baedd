package completion

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetLatestInRegion(ctx context.Context, courierID int64, region int32) (*entities.CompletionRecord, error) {
	query := `SELECT courier_id, order_id, region_id, region_seq, completed_at, lead_time_seconds
		FROM completions
		WHERE courier_id = $1 AND region_id = $2
		ORDER BY region_seq DESC
		LIMIT 1`

	var model CompletionDB
	err := r.querier.QueryRow(ctx, query, courierID, region).
		Scan(
			&model.CourierID,
			&model.OrderID,
			&model.RegionID,
			&model.RegionSeq,
			&model.CompletedAt,
			&model.LeadTimeSeconds,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected completion repository latest error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Create(ctx context.Context, record entities.CompletionRecord) error {
	query := `INSERT INTO completions
		(courier_id, order_id, region_id, region_seq, completed_at, lead_time_seconds)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.querier.Exec(ctx, query,
		record.CourierID,
		record.OrderID,
		record.Region,
		record.RegionSeq,
		record.CompletedAt,
		record.LeadTimeSeconds,
	)
	if err != nil {
		return fmt.Errorf("unexpected completion repository create error: %w", err)
	}

	return nil
}

// GetRegionLeadTimes суммы и количества по регионам, в которых курьер выполнял заказы.
// Для глобального режима в регион попадают выполнения всех курьеров.
func (r *Repository) GetRegionLeadTimes(ctx context.Context, courierID int64, scope entities.RatingScope) ([]entities.RegionLeadTime, error) {
	builder := qb.
		Select("region_id", "SUM(lead_time_seconds)::bigint", "COUNT(*)").
		From("completions").
		GroupBy("region_id").
		OrderBy("region_id")

	switch scope {
	case entities.RatingScopeCourier:
		builder = builder.Where(sq.Eq{"courier_id": courierID})
	default:
		builder = builder.Where("region_id IN (SELECT DISTINCT region_id FROM completions WHERE courier_id = ?)", courierID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected completion repository lead times error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected completion repository lead times error: %w", err)
	}

	models, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (RegionLeadTimeDB, error) {
		var m RegionLeadTimeDB
		err := row.Scan(&m.RegionID, &m.TotalSeconds, &m.Count)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected completion repository lead times error: %w", err)
	}

	return ToDomainLeadTimes(models), nil
}
