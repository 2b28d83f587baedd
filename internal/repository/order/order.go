package order

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/order"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"o.id",
	"o.weight::text",
	"o.region_id",
	"o.courier_id",
	"o.courier_category",
	"o.assigned_at",
	"o.created_at",
	"cm.completed_at",
	`COALESCE((SELECT array_agg(h.hours ORDER BY h.position)
		FROM order_delivery_hours h WHERE h.order_id = o.id), '{}'::text[])`,
}

// notCompleted условие для заказов, которые еще можно переназначить или снять.
const notCompleted = "NOT EXISTS (SELECT 1 FROM completions c WHERE c.order_id = o.id)"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderCreate entities.OrderCreate) error {
	query := `INSERT INTO orders (id, weight, region_id) VALUES ($1, $2::numeric, $3)`

	_, err := r.querier.Exec(ctx, query, orderCreate.ID, orderCreate.Weight.String(), orderCreate.Region)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return order.ErrConflict
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	if len(orderCreate.DeliveryHours) == 0 {
		return nil
	}

	query = `INSERT INTO order_delivery_hours (order_id, position, hours)
		SELECT $1, t.position, t.hours FROM unnest($2::text[]) WITH ORDINALITY AS t(hours, position)`

	_, err = r.querier.Exec(ctx, query, orderCreate.ID, orderCreate.DeliveryHours)
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error) {
	query, args, err := selectOrders().
		Where(sq.Eq{"o.id": id}).
		Suffix("FOR UPDATE OF o").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orders, err := r.queryOrders(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}
	if len(orders) == 0 {
		return nil, order.ErrOrderNotFound
	}

	return &orders[0], nil
}

// FindAssignableOrders строки, уже заблокированные конкурентным назначением, пропускаются.
func (r *Repository) FindAssignableOrders(ctx context.Context, filter entities.AssignableOrdersFilter) ([]entities.Order, error) {
	query, args, err := selectOrders().
		Where(sq.Eq{"o.courier_id": nil}).
		Where("o.weight <= ?::numeric", filter.MaxWeight.String()).
		Where("o.region_id = ANY(?::int[])", filter.Regions).
		OrderBy("o.id").
		Suffix("FOR UPDATE OF o SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository find assignable error: %w", err)
	}

	orders, err := r.queryOrders(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository find assignable error: %w", err)
	}
	return orders, nil
}

func (r *Repository) ClaimOrders(ctx context.Context, orderIDs []int64, assignment entities.Assignment) ([]int64, error) {
	query := `UPDATE orders
		SET courier_id = $1, courier_category = $2, assigned_at = $3
		WHERE id = ANY($4::bigint[]) AND courier_id IS NULL
		RETURNING id`

	ids, err := r.queryIDs(ctx, query,
		assignment.CourierID,
		assignment.Category.String(),
		assignment.AssignedAt,
		orderIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository claim error: %w", err)
	}
	return ids, nil
}

func (r *Repository) GetOpenOrdersByCourier(ctx context.Context, courierID int64) ([]entities.Order, error) {
	query, args, err := selectOrders().
		Where(sq.Eq{"o.courier_id": courierID}).
		Where(sq.Eq{"cm.order_id": nil}).
		OrderBy("o.id").
		Suffix("FOR UPDATE OF o").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get open error: %w", err)
	}

	orders, err := r.queryOrders(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get open error: %w", err)
	}
	return orders, nil
}

// RevokeOrders снимает только заказы, которые все еще у этого курьера и не выполнены.
func (r *Repository) RevokeOrders(ctx context.Context, courierID int64, orderIDs []int64) ([]int64, error) {
	query := `UPDATE orders o
		SET courier_id = NULL, courier_category = NULL, assigned_at = NULL
		WHERE o.courier_id = $1 AND o.id = ANY($2::bigint[]) AND ` + notCompleted + `
		RETURNING o.id`

	ids, err := r.queryIDs(ctx, query, courierID, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository revoke error: %w", err)
	}
	return ids, nil
}

func (r *Repository) GetLatestOpenAssignmentTime(ctx context.Context, courierID int64) (*time.Time, error) {
	query := `SELECT max(o.assigned_at) FROM orders o WHERE o.courier_id = $1 AND ` + notCompleted

	var latest *time.Time
	err := r.querier.QueryRow(ctx, query, courierID).Scan(&latest)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository latest assignment error: %w", err)
	}
	if latest == nil {
		return nil, nil
	}

	utc := latest.UTC()
	return &utc, nil
}

func (r *Repository) CountBacklog(ctx context.Context) (*entities.Backlog, error) {
	query := `SELECT
			count(*) FILTER (WHERE o.courier_id IS NULL),
			count(*) FILTER (WHERE o.courier_id IS NOT NULL AND ` + notCompleted + `)
		FROM orders o`

	var backlog entities.Backlog
	err := r.querier.QueryRow(ctx, query).Scan(&backlog.Unassigned, &backlog.OpenAssignments)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count backlog error: %w", err)
	}
	return &backlog, nil
}

func selectOrders() sq.SelectBuilder {
	return qb.
		Select(orderColumns...).
		From("orders o").
		LeftJoin("completions cm ON cm.order_id = o.id")
}

func (r *Repository) queryOrders(ctx context.Context, query string, args ...any) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	models := make([]OrderDB, 0, 8)
	for rows.Next() {
		var m OrderDB
		err := rows.Scan(
			&m.ID,
			&m.Weight,
			&m.RegionID,
			&m.CourierID,
			&m.CourierCategory,
			&m.AssignedAt,
			&m.CreatedAt,
			&m.CompletedAt,
			&m.DeliveryHours,
		)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ToDomainList(models)
}

func (r *Repository) queryIDs(ctx context.Context, query string, args ...any) ([]int64, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
