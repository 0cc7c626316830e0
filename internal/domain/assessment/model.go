package assessment

import (
	"time"

	"github.com/google/uuid"
)

// Assessment statuses as stored by the assessment-capture service. This
// service only reads completed rows.
const (
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// Assessment maps to the assessment table. Scoring is owned by the capture
// service; rows are read-only here.
type Assessment struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	ClientID     uuid.UUID  `db:"client_id" json:"client_id"`
	IntakeID     *uuid.UUID `db:"intake_id" json:"intake_id,omitempty"`
	TemplateName string     `db:"template_name" json:"template_name"`
	Status       string     `db:"status" json:"status"`
	TotalScore   *float64   `db:"total_score" json:"total_score,omitempty"`
	MaxScore     *float64   `db:"max_score" json:"max_score,omitempty"`
	CompletedAt  *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// Result is the projection of a completed assessment consumed by the rule
// catalog.
type Result struct {
	Instrument Instrument
	Name       string
	TotalScore *float64
	MaxScore   *float64
}

// Result projects the assessment into the rule-catalog input. Resolution via
// the legacy code transform is reported through Match so callers can flag
// renamed templates.
func (a *Assessment) Result() (Result, Match) {
	inst, match := InstrumentFromTemplate(a.TemplateName)
	return Result{
		Instrument: inst,
		Name:       a.TemplateName,
		TotalScore: a.TotalScore,
		MaxScore:   a.MaxScore,
	}, match
}
