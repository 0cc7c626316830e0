package assessment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// ListCompletedByClient returns the client's completed assessments,
	// most recently completed first, optionally scoped to one intake.
	ListCompletedByClient(ctx context.Context, clientID uuid.UUID, intakeID *uuid.UUID) ([]*Assessment, error)
}
