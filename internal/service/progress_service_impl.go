package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lucasferrand/pathex/internal/catalog"
	"github.com/lucasferrand/pathex/internal/db"
	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/engine"
	"github.com/lucasferrand/pathex/internal/repository"
)

type progressService struct {
	progress repository.ProgressRepo
	uow      db.UnitOfWork
}

func NewProgressService(progress repository.ProgressRepo, uow db.UnitOfWork) ProgressService {
	return &progressService{progress: progress, uow: uow}
}

// Get returns the scope's progress record, or a fresh empty one if none
// has been written yet (records are created lazily on first write). All
// phase percentages are re-derived from the catalog; stored values are
// not trusted.
func (s *progressService) Get(ctx context.Context, scope domain.Scope) (*domain.ProgramProgress, error) {
	prog, err := s.progress.Get(ctx, scope)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewProgramProgress(scope), nil
	}
	if err != nil {
		return nil, err
	}
	recomputePercentages(prog)
	return prog, nil
}

// Toggle sets one checklist answer and persists the recomputed record.
func (s *progressService) Toggle(ctx context.Context, scope domain.Scope, phase int, itemID string, done bool) (*domain.PhaseProgress, error) {
	var result domain.PhaseProgress
	err := s.withRecord(ctx, scope, func(prog *domain.ProgramProgress) error {
		if err := engine.ToggleItem(prog, phase, catalog.PhaseChecklist(phase), itemID, done); err != nil {
			return err
		}
		result = *prog.Phase(phase)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *progressService) SetNotes(ctx context.Context, scope domain.Scope, phase int, notes string) error {
	return s.withRecord(ctx, scope, func(prog *domain.ProgramProgress) error {
		pp := prog.Phase(phase)
		if pp == nil {
			return fmt.Errorf("phase %d: %w", phase, engine.ErrInvalidPhase)
		}
		pp.Notes = notes
		return nil
	})
}

// Complete runs the Complete transition. The percentage is revalidated
// against the catalog inside the transaction, so a request based on stale
// client state fails with engine.ErrPhaseIncomplete and nothing is
// written.
func (s *progressService) Complete(ctx context.Context, scope domain.Scope, phase int) (*domain.PhaseProgress, error) {
	var result domain.PhaseProgress
	err := s.withRecord(ctx, scope, func(prog *domain.ProgramProgress) error {
		if err := engine.CompletePhase(prog, phase, catalog.PhaseChecklist(phase), time.Now()); err != nil {
			return err
		}
		result = *prog.Phase(phase)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Reopen runs the Uncomplete transition. Checklist answers, percentage,
// and notes survive; only the completed flag and timestamp are cleared.
func (s *progressService) Reopen(ctx context.Context, scope domain.Scope, phase int) (*domain.PhaseProgress, error) {
	var result domain.PhaseProgress
	err := s.withRecord(ctx, scope, func(prog *domain.ProgramProgress) error {
		if err := engine.ReopenPhase(prog, phase); err != nil {
			return err
		}
		result = *prog.Phase(phase)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// withRecord loads (or lazily creates) the scope's record inside a
// transaction, applies fn, and saves the whole record back. The save is
// version-conditional; a concurrent writer surfaces as
// repository.ErrStaleRecord rather than a silently lost update.
func (s *progressService) withRecord(ctx context.Context, scope domain.Scope, fn func(*domain.ProgramProgress) error) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)

		prog, err := txProgress.Get(ctx, scope)
		if errors.Is(err, repository.ErrNotFound) {
			prog = domain.NewProgramProgress(scope)
		} else if err != nil {
			return err
		} else {
			recomputePercentages(prog)
		}

		if err := fn(prog); err != nil {
			return err
		}
		return txProgress.Save(ctx, prog)
	})
}

// recomputePercentages re-derives every phase percentage from the catalog
// and the stored checklist.
func recomputePercentages(prog *domain.ProgramProgress) {
	for i := domain.FirstPhase; i <= domain.LastPhase; i++ {
		pp := &prog.Phases[i]
		pp.Progress = engine.StepProgress(catalog.PhaseChecklist(i), pp.Checklist)
	}
}
