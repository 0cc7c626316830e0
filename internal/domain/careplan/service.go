package careplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/careops/careops/internal/domain/assessment"
	"github.com/careops/careops/internal/domain/audit"
	"github.com/careops/careops/internal/domain/client"
	"github.com/careops/careops/internal/platform/auth"
	"github.com/careops/careops/internal/platform/db"
)

// ErrNoCompletedAssessments is the domain precondition gate: generation
// refuses to run for a client with no completed assessments. The message is
// user-facing.
var ErrNoCompletedAssessments = errors.New("No completed assessments found for this client")

// GenerateRequest is the structured request contract for plan generation.
type GenerateRequest struct {
	ClientID uuid.UUID  `json:"client_id"`
	IntakeID *uuid.UUID `json:"intake_id,omitempty"`
}

// SourceAssessment summarizes one assessment the plan was generated from,
// returned for caller display.
type SourceAssessment struct {
	Name     string   `json:"name"`
	Score    *float64 `json:"score,omitempty"`
	MaxScore *float64 `json:"max_score,omitempty"`
}

// GenerateResult is the response contract for plan generation.
type GenerateResult struct {
	CarePlan      *CarePlan          `json:"care_plan"`
	GeneratedFrom []SourceAssessment `json:"generated_from"`
}

type Service struct {
	plans       Repository
	clients     client.Repository
	assessments assessment.Repository
	audits      audit.Repository
	tx          db.TxRunner
	logger      zerolog.Logger
	now         func() time.Time
}

func NewService(plans Repository, clients client.Repository, assessments assessment.Repository,
	audits audit.Repository, tx db.TxRunner, logger zerolog.Logger) *Service {
	return &Service{
		plans:       plans,
		clients:     clients,
		assessments: assessments,
		audits:      audits,
		tx:          tx,
		logger:      logger,
		now:         time.Now,
	}
}

// Generate converts a client's completed assessments into a staffable care
// plan and persists it atomically with its tasks and audit entry. Each call
// creates a new plan; re-running for the same client is deliberate, not an
// idempotent replay.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if req.ClientID == uuid.Nil {
		return nil, fmt.Errorf("client_id is required")
	}

	cl, err := s.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	assessments, err := s.assessments.ListCompletedByClient(ctx, req.ClientID, req.IntakeID)
	if err != nil {
		return nil, fmt.Errorf("list completed assessments: %w", err)
	}
	if len(assessments) == 0 {
		return nil, ErrNoCompletedAssessments
	}

	results := make([]assessment.Result, 0, len(assessments))
	sources := make([]SourceAssessment, 0, len(assessments))
	for _, a := range assessments {
		res, match := a.Result()
		switch match {
		case assessment.MatchLegacyCode:
			// Resolution relied on the display-name transform; the template
			// owner should add this name to the lookup table before a rename
			// silently breaks it.
			s.logger.Warn().
				Str("template", a.TemplateName).
				Str("instrument", string(res.Instrument)).
				Msg("assessment template resolved via legacy code transform")
		case assessment.MatchNone:
			s.logger.Debug().
				Str("template", a.TemplateName).
				Msg("unrecognized assessment template contributes no tasks")
		}
		results = append(results, res)
		sources = append(sources, SourceAssessment{
			Name:     a.TemplateName,
			Score:    a.TotalScore,
			MaxScore: a.MaxScore,
		})
	}

	tasks := MergeTasks(results)
	weeklyHours := EstimateWeeklyHours(tasks)

	now := s.now()
	plan := &CarePlan{
		PlanNumber:       NewPlanNumber(now),
		ClientID:         req.ClientID,
		Status:           StatusDraft,
		EffectiveDate:    now,
		EndDate:          now.Add(EffectiveWindow),
		RecommendedHours: weeklyHours,
		Summary: fmt.Sprintf(
			"Care plan generated from %d completed assessment(s), producing %d care task(s) at an estimated %.1f staffing hours per week.",
			len(assessments), len(tasks), weeklyHours),
	}
	for _, spec := range tasks {
		plan.Tasks = append(plan.Tasks, &TaskTemplate{
			TaskType:     spec.TaskType,
			Description:  spec.Description,
			Frequency:    spec.Frequency,
			Duration:     spec.Duration,
			Instructions: spec.Instructions,
		})
	}

	details, err := json.Marshal(audit.GenerationDetails{
		ClientName:      cl.FullName(),
		AssessmentCount: len(assessments),
		TaskCount:       len(tasks),
		WeeklyHours:     weeklyHours,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal audit details: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.plans.LockClient(txCtx, req.ClientID); err != nil {
			return fmt.Errorf("lock client: %w", err)
		}
		if err := s.plans.Create(txCtx, plan); err != nil {
			return fmt.Errorf("create care plan: %w", err)
		}
		return s.audits.Create(txCtx, &audit.Entry{
			Action:     audit.ActionCarePlanGenerated,
			EntityType: "care_plan",
			EntityID:   plan.ID,
			ActorID:    auth.UserIDFromContext(ctx),
			Details:    details,
		})
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("client_id", req.ClientID.String()).
			Str("tenant", db.TenantFromContext(ctx)).
			Msg("care plan generation failed")
		return nil, err
	}

	s.logger.Info().
		Str("client_id", req.ClientID.String()).
		Str("plan_number", plan.PlanNumber).
		Int("tasks", len(tasks)).
		Float64("weekly_hours", weeklyHours).
		Msg("care plan generated")

	return &GenerateResult{CarePlan: plan, GeneratedFrom: sources}, nil
}

// GetCarePlan returns a generated plan with its tasks.
func (s *Service) GetCarePlan(ctx context.Context, id uuid.UUID) (*CarePlan, error) {
	return s.plans.GetByID(ctx, id)
}

// ListCarePlansByClient lists a client's generated plans, newest first.
func (s *Service) ListCarePlansByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*CarePlan, int, error) {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		return nil, 0, err
	}
	return s.plans.ListByClient(ctx, clientID, limit, offset)
}
