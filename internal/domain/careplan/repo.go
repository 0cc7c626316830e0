package careplan

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create inserts the plan and its task rows. Callers run it inside a
	// transaction so the plan never exists without its tasks and audit entry.
	Create(ctx context.Context, cp *CarePlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*CarePlan, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*CarePlan, int, error)
	// LockClient takes a transaction-scoped advisory lock keyed by the
	// client, serializing concurrent generation for the same client.
	LockClient(ctx context.Context, clientID uuid.UUID) error
}
