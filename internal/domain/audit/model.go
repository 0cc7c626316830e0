package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Actions recorded by this service.
const (
	ActionCarePlanGenerated = "CARE_PLAN_GENERATED"
)

// Entry maps to the audit_log table. Entries are immutable and always
// written in the same transaction as the change they describe.
type Entry struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	Action     string          `db:"action" json:"action"`
	EntityType string          `db:"entity_type" json:"entity_type"`
	EntityID   uuid.UUID       `db:"entity_id" json:"entity_id"`
	ActorID    string          `db:"actor_id" json:"actor_id"`
	Details    json.RawMessage `db:"details" json:"details,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// GenerationDetails is the structured payload recorded for a
// CARE_PLAN_GENERATED entry.
type GenerationDetails struct {
	ClientName      string  `json:"client_name"`
	AssessmentCount int     `json:"assessment_count"`
	TaskCount       int     `json:"task_count"`
	WeeklyHours     float64 `json:"weekly_hours"`
}
