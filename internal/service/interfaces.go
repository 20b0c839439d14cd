package service

import (
	"context"

	"github.com/lucasferrand/pathex/internal/contract"
	"github.com/lucasferrand/pathex/internal/domain"
)

type ClientService interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Client, error)
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// AssessmentService manages the phase-0 maturity assessment deliverable.
// Save recomputes every derived field (clamped scores, totals, actions)
// and replaces the stored record wholesale.
type AssessmentService interface {
	Get(ctx context.Context, scope domain.Scope) (*domain.Assessment, error)
	Save(ctx context.Context, scope domain.Scope, items []domain.AssessmentItem) (*domain.Assessment, error)
	Actions(ctx context.Context, scope domain.Scope) ([]domain.ImprovementAction, error)
	ActionsForPhase(ctx context.Context, scope domain.Scope, phase int) ([]domain.ImprovementAction, error)
}

// ProgressService manages the per-scope program progress record and the
// phase completion transitions. Every mutation re-derives percentages
// from the catalog inside the same transaction that persists them.
type ProgressService interface {
	Get(ctx context.Context, scope domain.Scope) (*domain.ProgramProgress, error)
	Toggle(ctx context.Context, scope domain.Scope, phase int, itemID string, done bool) (*domain.PhaseProgress, error)
	SetNotes(ctx context.Context, scope domain.Scope, phase int, notes string) error
	Complete(ctx context.Context, scope domain.Scope, phase int) (*domain.PhaseProgress, error)
	Reopen(ctx context.Context, scope domain.Scope, phase int) (*domain.PhaseProgress, error)
}

type StatusService interface {
	GetStatus(ctx context.Context, scope domain.Scope) (*contract.StatusResponse, error)
}
