package careplan

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careops/careops/internal/platform/db"
)

// ErrPlanNotFound is returned when a care plan id does not resolve in the
// caller's tenant.
var ErrPlanNotFound = errors.New("care plan not found")

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const cpCols = `id, plan_number, client_id, status, effective_date, end_date,
	recommended_hours, summary, created_at, updated_at`

func (r *repoPG) scanPlan(row pgx.Row) (*CarePlan, error) {
	var cp CarePlan
	err := row.Scan(&cp.ID, &cp.PlanNumber, &cp.ClientID, &cp.Status,
		&cp.EffectiveDate, &cp.EndDate, &cp.RecommendedHours, &cp.Summary,
		&cp.CreatedAt, &cp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	return &cp, err
}

func (r *repoPG) Create(ctx context.Context, cp *CarePlan) error {
	cp.ID = uuid.New()
	conn := r.conn(ctx)
	_, err := conn.Exec(ctx, `
		INSERT INTO care_plan (id, plan_number, client_id, status, effective_date,
			end_date, recommended_hours, summary)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		cp.ID, cp.PlanNumber, cp.ClientID, cp.Status, cp.EffectiveDate,
		cp.EndDate, cp.RecommendedHours, cp.Summary)
	if err != nil {
		return err
	}
	for i, t := range cp.Tasks {
		t.ID = uuid.New()
		t.CarePlanID = cp.ID
		t.Position = i
		_, err = conn.Exec(ctx, `
			INSERT INTO care_plan_task (id, care_plan_id, position, task_type,
				description, frequency, duration, instructions)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			t.ID, t.CarePlanID, t.Position, t.TaskType,
			t.Description, t.Frequency, t.Duration, t.Instructions)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*CarePlan, error) {
	cp, err := r.scanPlan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cpCols+` FROM care_plan WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, care_plan_id, position, task_type, description, frequency,
			duration, instructions
		FROM care_plan_task WHERE care_plan_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var t TaskTemplate
		if err := rows.Scan(&t.ID, &t.CarePlanID, &t.Position, &t.TaskType,
			&t.Description, &t.Frequency, &t.Duration, &t.Instructions); err != nil {
			return nil, err
		}
		cp.Tasks = append(cp.Tasks, &t)
	}
	return cp, rows.Err()
}

func (r *repoPG) ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*CarePlan, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM care_plan WHERE client_id = $1`, clientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cpCols+` FROM care_plan WHERE client_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		clientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*CarePlan
	for rows.Next() {
		cp, err := r.scanPlan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, cp)
	}
	return items, total, rows.Err()
}

func (r *repoPG) LockClient(ctx context.Context, clientID uuid.UUID) error {
	// Transaction-scoped advisory lock; released automatically at
	// commit/rollback.
	_, err := r.conn(ctx).Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, clientID)
	return err
}
