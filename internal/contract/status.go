// Package contract defines the request/response shapes exchanged between
// the service layer and its callers.
package contract

import (
	"time"

	"github.com/lucasferrand/pathex/internal/domain"
)

// AssessmentSummary is the score roll-up of the phase-0 assessment.
type AssessmentSummary struct {
	TotalScore      float64
	MaxScore        int
	PercentageScore int
	ItemCount       int
	GapCount        int
	ActionCount     int
}

// PhaseStatusView is one phase row of the program status.
type PhaseStatusView struct {
	Phase       int
	Title       string
	Progress    int
	State       domain.PhaseState
	DoneCount   int
	TotalCount  int
	Completed   bool
	CompletedAt *time.Time
	Notes       string
}

// StatusResponse is the full program dashboard for one scope.
type StatusResponse struct {
	Scope             domain.Scope
	Assessment        *AssessmentSummary // nil until an assessment is saved
	Phases            []PhaseStatusView
	Overall           int
	CurrentPhase      int
	CurrentPhaseTitle string
}
