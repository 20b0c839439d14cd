package domain

import "time"

// PhaseProgress tracks one implementation phase for one scope: which
// checklist items are done, the derived percentage, and the completion
// flag. Percentage is always recomputed from the checklist against the
// catalog; a stored value is never authoritative.
type PhaseProgress struct {
	Phase       int
	Checklist   map[string]bool
	Progress    int
	Completed   bool
	CompletedAt *time.Time
	Notes       string
}

// DoneCount returns the number of catalog items marked done. Stray keys
// that are not in the catalog do not count.
func (p *PhaseProgress) DoneCount(catalog []ChecklistItem) int {
	n := 0
	for _, item := range catalog {
		if p.Checklist[item.ID] {
			n++
		}
	}
	return n
}

// ProgramProgress is the full per-scope progress record: one PhaseProgress
// per implementation phase plus the current-phase pointer. Phases is
// indexed by phase number; index 0 is unused (the assessment stage has no
// checklist). Version is a monotonic stamp used to detect lost updates
// between concurrent editors.
type ProgramProgress struct {
	SubjectID    string
	ClientID     string
	Phases       [LastPhase + 1]PhaseProgress
	CurrentPhase int
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProgramProgress returns an empty record for the given scope with the
// current phase at 1 and every phase checklist initialized.
func NewProgramProgress(scope Scope) *ProgramProgress {
	p := &ProgramProgress{
		SubjectID:    scope.SubjectID,
		ClientID:     scope.ClientID,
		CurrentPhase: FirstPhase,
	}
	for i := FirstPhase; i <= LastPhase; i++ {
		p.Phases[i] = PhaseProgress{Phase: i, Checklist: make(map[string]bool)}
	}
	return p
}

// Phase returns a pointer to the progress of the given implementation
// phase, or nil if n is out of range.
func (p *ProgramProgress) Phase(n int) *PhaseProgress {
	if !ValidPhase(n) {
		return nil
	}
	return &p.Phases[n]
}
