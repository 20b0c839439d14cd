package service

import (
	"context"
	"errors"

	"github.com/lucasferrand/pathex/internal/catalog"
	"github.com/lucasferrand/pathex/internal/contract"
	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/engine"
	"github.com/lucasferrand/pathex/internal/repository"
)

type statusService struct {
	assessments AssessmentService
	progress    ProgressService
}

func NewStatusService(assessments AssessmentService, progress ProgressService) StatusService {
	return &statusService{assessments: assessments, progress: progress}
}

func (s *statusService) GetStatus(ctx context.Context, scope domain.Scope) (*contract.StatusResponse, error) {
	prog, err := s.progress.Get(ctx, scope)
	if err != nil {
		return nil, err
	}

	resp := &contract.StatusResponse{
		Scope:             scope,
		Overall:           engine.OverallProgress(engine.PhasePercentages(prog)),
		CurrentPhase:      prog.CurrentPhase,
		CurrentPhaseTitle: catalog.PhaseTitle(prog.CurrentPhase),
	}

	for i := domain.FirstPhase; i <= domain.LastPhase; i++ {
		pp := &prog.Phases[i]
		items := catalog.PhaseChecklist(i)
		resp.Phases = append(resp.Phases, contract.PhaseStatusView{
			Phase:       i,
			Title:       catalog.PhaseTitle(i),
			Progress:    pp.Progress,
			State:       engine.StateOf(pp),
			DoneCount:   pp.DoneCount(items),
			TotalCount:  len(items),
			Completed:   pp.Completed,
			CompletedAt: pp.CompletedAt,
			Notes:       pp.Notes,
		})
	}

	assessment, err := s.assessments.Get(ctx, scope)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err == nil {
		resp.Assessment = &contract.AssessmentSummary{
			TotalScore:      assessment.TotalScore,
			MaxScore:        assessment.MaxScore,
			PercentageScore: assessment.PercentageScore,
			ItemCount:       len(assessment.Items),
			GapCount:        len(engine.DetectGaps(assessment.Items)),
			ActionCount:     len(assessment.ImprovementActions),
		}
	}

	return resp, nil
}
