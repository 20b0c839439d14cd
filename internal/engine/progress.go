package engine

import (
	"math"

	"github.com/lucasferrand/pathex/internal/domain"
)

// StepProgress computes the 0-100 completion percentage of one phase from
// its catalog and done-map. An empty catalog yields 0, never "trivially
// complete". Pure and idempotent; recomputed on every toggle.
func StepProgress(catalog []domain.ChecklistItem, done map[string]bool) int {
	if len(catalog) == 0 {
		return 0
	}
	count := 0
	for _, item := range catalog {
		if done[item.ID] {
			count++
		}
	}
	return roundPct(float64(count), float64(len(catalog)))
}

// OverallProgress combines the six per-phase percentages (phases 1-6) into
// one program-wide percentage: round(sum / 6). Phase 0 feeds action
// generation but never counts toward implementation completion.
func OverallProgress(percentages [domain.LastPhase]int) int {
	sum := 0
	for _, pct := range percentages {
		sum += pct
	}
	return int(math.Round(float64(sum) / float64(domain.LastPhase)))
}

// PhasePercentages extracts the per-phase percentages of a progress record
// in phase order, for OverallProgress.
func PhasePercentages(prog *domain.ProgramProgress) [domain.LastPhase]int {
	var pcts [domain.LastPhase]int
	for i := domain.FirstPhase; i <= domain.LastPhase; i++ {
		pcts[i-1] = prog.Phases[i].Progress
	}
	return pcts
}

// roundPct returns round(100 * num / den), or 0 when den is 0.
func roundPct(num, den float64) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(100 * num / den))
}
