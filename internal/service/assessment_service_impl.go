package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/engine"
	"github.com/lucasferrand/pathex/internal/repository"
)

type assessmentService struct {
	deliverables repository.DeliverableRepo
}

func NewAssessmentService(deliverables repository.DeliverableRepo) AssessmentService {
	return &assessmentService{deliverables: deliverables}
}

// Get loads the stored assessment and recomputes every derived field from
// the item scores. Stored totals and actions are ignored; the load is the
// sole source of truth for items only.
func (s *assessmentService) Get(ctx context.Context, scope domain.Scope) (*domain.Assessment, error) {
	d, err := s.deliverables.Get(ctx, scope, domain.PhaseAssessment, domain.DocTypeAssessment)
	if err != nil {
		return nil, err
	}
	var stored domain.Assessment
	if err := json.Unmarshal(d.Payload, &stored); err != nil {
		return nil, fmt.Errorf("decoding assessment: %w", err)
	}
	rebuilt := engine.BuildAssessment(stored.Items)
	return &rebuilt, nil
}

// Save rebuilds the assessment from the submitted items and replaces the
// stored record wholesale. An item re-scored with no remaining gap loses
// its action here; nothing is merged.
func (s *assessmentService) Save(ctx context.Context, scope domain.Scope, items []domain.AssessmentItem) (*domain.Assessment, error) {
	built := engine.BuildAssessment(items)

	payload, err := json.Marshal(built)
	if err != nil {
		return nil, fmt.Errorf("encoding assessment: %w", err)
	}
	d := &domain.Deliverable{
		SubjectID: scope.SubjectID,
		ClientID:  scope.ClientID,
		Phase:     domain.PhaseAssessment,
		DocType:   domain.DocTypeAssessment,
		Payload:   payload,
	}
	if err := s.deliverables.Put(ctx, d); err != nil {
		return nil, err
	}
	return &built, nil
}

func (s *assessmentService) Actions(ctx context.Context, scope domain.Scope) ([]domain.ImprovementAction, error) {
	a, err := s.Get(ctx, scope)
	if err != nil {
		return nil, err
	}
	return a.ImprovementActions, nil
}

func (s *assessmentService) ActionsForPhase(ctx context.Context, scope domain.Scope, phase int) ([]domain.ImprovementAction, error) {
	if !domain.ValidPhase(phase) {
		return nil, fmt.Errorf("phase %d: %w", phase, engine.ErrInvalidPhase)
	}
	all, err := s.Actions(ctx, scope)
	if err != nil {
		return nil, err
	}
	var out []domain.ImprovementAction
	for _, action := range all {
		if action.Phase == phase {
			out = append(out, action)
		}
	}
	return out, nil
}
