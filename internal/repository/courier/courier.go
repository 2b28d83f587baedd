package courier

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectCourier = `SELECT c.id, c.category, c.rating::text, c.earning, c.created_at, c.updated_at,
		COALESCE((SELECT array_agg(r.region_id ORDER BY r.region_id)
			FROM courier_regions r WHERE r.courier_id = c.id), '{}'::int[]),
		COALESCE((SELECT array_agg(h.hours ORDER BY h.position)
			FROM courier_working_hours h WHERE h.courier_id = c.id), '{}'::text[])
	FROM couriers c`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вызывается внутри транзакции: курьер, его регионы и часы пишутся вместе.
func (r *Repository) Create(ctx context.Context, courierCreate entities.CourierCreate) error {
	query := `INSERT INTO couriers (id, category) VALUES ($1, $2)`

	_, err := r.querier.Exec(ctx, query, courierCreate.ID, courierCreate.Category.String())
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return courier.ErrConflict
		}
		return fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	err = r.replaceProfile(ctx, courierCreate.ID, &courierCreate.Regions, &courierCreate.WorkingHours)
	if err != nil {
		return fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	query, args, err := qb.
		Update("couriers").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": courierModify.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, courier.ErrCourierNotFound
	}

	err = r.replaceProfile(ctx, courierModify.ID, courierModify.Regions, courierModify.WorkingHours)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return r.GetByID(ctx, courierModify.ID)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := selectCourier + ` WHERE c.id = $1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&courierModel.ID,
			&courierModel.Category,
			&courierModel.Rating,
			&courierModel.Earning,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
			&courierModel.Regions,
			&courierModel.WorkingHours,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	c, err := ToDomain(&courierModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}
	return c, nil
}

// LockForCompletion сериализует выполнения одного курьера: рейтинг и заработок
// пересчитываются под блокировкой строки.
func (r *Repository) LockForCompletion(ctx context.Context, id int64) error {
	query := `SELECT id FROM couriers WHERE id = $1 FOR UPDATE`

	var locked int64
	err := r.querier.QueryRow(ctx, query, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return courier.ErrCourierNotFound
		}
		return fmt.Errorf("unexpected courier repository lock error: %w", err)
	}

	return nil
}

func (r *Repository) UpdateRatingEarning(ctx context.Context, id int64, rating decimal.Decimal, earningDelta int64) error {
	query := `UPDATE couriers
		SET rating = $2::numeric, earning = earning + $3, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id, rating.StringFixed(2), earningDelta)
	if err != nil {
		return fmt.Errorf("unexpected courier repository update rating error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}

	return nil
}

// replaceProfile nil список не трогается, пустой - очищается.
func (r *Repository) replaceProfile(ctx context.Context, id int64, regions *[]int32, hours *[]string) error {
	batch := &pgx.Batch{}

	if regions != nil {
		batch.Queue(`DELETE FROM courier_regions WHERE courier_id = $1`, id)
		if len(*regions) > 0 {
			batch.Queue(`INSERT INTO courier_regions (courier_id, region_id)
				SELECT $1, region_id FROM unnest($2::int[]) AS region_id
				ON CONFLICT DO NOTHING`, id, *regions)
		}
	}

	if hours != nil {
		batch.Queue(`DELETE FROM courier_working_hours WHERE courier_id = $1`, id)
		if len(*hours) > 0 {
			batch.Queue(`INSERT INTO courier_working_hours (courier_id, position, hours)
				SELECT $1, t.position, t.hours FROM unnest($2::text[]) WITH ORDINALITY AS t(hours, position)`,
				id, *hours)
		}
	}

	if batch.Len() == 0 {
		return nil
	}

	results := r.querier.SendBatch(ctx, batch)
	for range batch.Len() {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("replace profile: %w", err)
		}
	}

	return results.Close()
}
