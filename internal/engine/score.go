package engine

import "github.com/lucasferrand/pathex/internal/domain"

// BuildAssessment recomputes every derived field of an assessment from its
// items: clamped scores, score totals, and the full prioritized action
// list. Each save runs this wholesale; an item re-scored to its maximum
// loses its action, and nothing from a previous save survives.
func BuildAssessment(items []domain.AssessmentItem) domain.Assessment {
	clamped := make([]domain.AssessmentItem, len(items))
	copy(clamped, items)
	for i := range clamped {
		clamped[i].Clamp()
	}

	var total float64
	var max int
	for _, item := range clamped {
		total += item.Achieved
		max += item.MaxScore
	}

	return domain.Assessment{
		Items:              clamped,
		ImprovementActions: GenerateActions(clamped),
		TotalScore:         total,
		MaxScore:           max,
		PercentageScore:    roundPct(total, float64(max)),
	}
}
