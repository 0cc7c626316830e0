package assessment

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careops/careops/internal/platform/db"
)

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

const cols = `id, client_id, intake_id, template_name, status,
	total_score, max_score, completed_at, created_at`

func (r *repoPG) ListCompletedByClient(ctx context.Context, clientID uuid.UUID, intakeID *uuid.UUID) ([]*Assessment, error) {
	query := `SELECT ` + cols + ` FROM assessment
		WHERE client_id = $1 AND status = $2`
	args := []interface{}{clientID, StatusCompleted}
	if intakeID != nil {
		query += ` AND intake_id = $3`
		args = append(args, *intakeID)
	}
	query += ` ORDER BY completed_at DESC NULLS LAST`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Assessment
	for rows.Next() {
		var a Assessment
		if err := rows.Scan(&a.ID, &a.ClientID, &a.IntakeID, &a.TemplateName,
			&a.Status, &a.TotalScore, &a.MaxScore, &a.CompletedAt, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}
