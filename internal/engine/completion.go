package engine

import (
	"fmt"
	"time"

	"github.com/lucasferrand/pathex/internal/domain"
)

// StateOf derives the completion state of a phase from its completed flag
// and percentage. A reopened phase can legitimately sit at 100% with
// completed=false.
func StateOf(p *domain.PhaseProgress) domain.PhaseState {
	switch {
	case p.Completed:
		return domain.PhaseCompleted
	case p.Progress >= 100:
		return domain.PhaseReadyToComplete
	case p.Progress > 0:
		return domain.PhaseInProgress
	default:
		return domain.PhaseNotStarted
	}
}

// ToggleItem sets one checklist answer and recomputes the phase
// percentage against the catalog. Toggles never change the completed
// flag; they only move the phase among the not-completed states.
func ToggleItem(prog *domain.ProgramProgress, phase int, catalog []domain.ChecklistItem, itemID string, done bool) error {
	pp := prog.Phase(phase)
	if pp == nil {
		return fmt.Errorf("phase %d: %w", phase, ErrInvalidPhase)
	}
	known := false
	for _, item := range catalog {
		if item.ID == itemID {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("phase %d item %q: %w", phase, itemID, ErrUnknownChecklistItem)
	}
	if pp.Checklist == nil {
		pp.Checklist = make(map[string]bool)
	}
	pp.Checklist[itemID] = done
	pp.Progress = StepProgress(catalog, pp.Checklist)
	return nil
}

// CompletePhase performs the Complete transition. The percentage is
// recomputed here from the catalog and checklist, not read from the
// stored record, so a request based on stale client state fails with
// ErrPhaseIncomplete and leaves the record untouched. On success the
// completion timestamp is stamped and the current-phase pointer advances
// to the next phase, capped at the last.
func CompletePhase(prog *domain.ProgramProgress, phase int, catalog []domain.ChecklistItem, now time.Time) error {
	pp := prog.Phase(phase)
	if pp == nil {
		return fmt.Errorf("phase %d: %w", phase, ErrInvalidPhase)
	}
	if pp.Completed {
		return fmt.Errorf("phase %d: %w", phase, ErrPhaseAlreadyCompleted)
	}
	pct := StepProgress(catalog, pp.Checklist)
	if pct < 100 {
		return fmt.Errorf("phase %d at %d%%: %w", phase, pct, ErrPhaseIncomplete)
	}

	pp.Progress = pct
	pp.Completed = true
	ts := now.UTC()
	pp.CompletedAt = &ts

	next := phase + 1
	if next > domain.LastPhase {
		next = domain.LastPhase
	}
	prog.CurrentPhase = next
	return nil
}

// ReopenPhase performs the Uncomplete transition: permitted from Completed
// only. The completed flag and timestamp are cleared; checklist answers,
// percentage, and notes are left exactly as they are.
func ReopenPhase(prog *domain.ProgramProgress, phase int) error {
	pp := prog.Phase(phase)
	if pp == nil {
		return fmt.Errorf("phase %d: %w", phase, ErrInvalidPhase)
	}
	if !pp.Completed {
		return fmt.Errorf("phase %d: %w", phase, ErrPhaseNotCompleted)
	}
	pp.Completed = false
	pp.CompletedAt = nil
	return nil
}
