package careplan

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Plan statuses. Generation always produces DRAFT; later lifecycle stages
// (review, signature, activation) are owned by the plan-management service.
const (
	StatusDraft = "DRAFT"
)

// EffectiveWindow is how long a generated plan remains effective.
const EffectiveWindow = 90 * 24 * time.Hour

// TaskSpecification is the value object produced by the rule catalog and
// consumed by the hours estimator. Order within a plan is display order and
// is preserved as generated.
type TaskSpecification struct {
	TaskType     string  `json:"task_type"`
	Description  string  `json:"description"`
	Frequency    string  `json:"frequency"`
	Duration     *string `json:"duration,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
}

// CarePlan maps to the care_plan table.
type CarePlan struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	PlanNumber       string          `db:"plan_number" json:"plan_number"`
	ClientID         uuid.UUID       `db:"client_id" json:"client_id"`
	Status           string          `db:"status" json:"status"`
	EffectiveDate    time.Time       `db:"effective_date" json:"effective_date"`
	EndDate          time.Time       `db:"end_date" json:"end_date"`
	RecommendedHours float64         `db:"recommended_hours" json:"recommended_hours"`
	Summary          string          `db:"summary" json:"summary"`
	Tasks            []*TaskTemplate `db:"-" json:"tasks"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

// TaskTemplate maps to the care_plan_task table, one row per generated task.
type TaskTemplate struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CarePlanID   uuid.UUID `db:"care_plan_id" json:"care_plan_id"`
	Position     int       `db:"position" json:"position"`
	TaskType     string    `db:"task_type" json:"task_type"`
	Description  string    `db:"description" json:"description"`
	Frequency    string    `db:"frequency" json:"frequency"`
	Duration     *string   `db:"duration" json:"duration,omitempty"`
	Instructions *string   `db:"instructions" json:"instructions,omitempty"`
}

const planNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewPlanNumber mints a human-readable plan number: CP-YYYYMMDD-XXXXX with a
// 5-character random suffix.
func NewPlanNumber(now time.Time) string {
	suffix := make([]byte, 5)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// uuid-derived suffix rather than panicking mid-request.
		copy(suffix, uuid.New().String())
	}
	for i := range suffix {
		suffix[i] = planNumberAlphabet[int(suffix[i])%len(planNumberAlphabet)]
	}
	return fmt.Sprintf("CP-%s-%s", now.Format("20060102"), suffix)
}
