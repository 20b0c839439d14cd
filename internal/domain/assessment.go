package domain

// AssessmentItem is one scored entry of the phase-0 maturity assessment:
// an immutable catalog definition plus the assessor's mutable score.
type AssessmentItem struct {
	ID           string
	ActivityCode string
	Description  string
	MaxScore     int
	Achieved     float64
	Comments     string
	Category     Category
}

// Clamp forces Achieved into [0, MaxScore]. The UI clamps on entry; the
// engine re-clamps before gap detection rather than rejecting the record.
func (a *AssessmentItem) Clamp() {
	if a.Achieved < 0 {
		a.Achieved = 0
	}
	if a.Achieved > float64(a.MaxScore) {
		a.Achieved = float64(a.MaxScore)
	}
}

// Gap returns the numeric shortfall MaxScore - Achieved.
func (a *AssessmentItem) Gap() float64 {
	return float64(a.MaxScore) - a.Achieved
}

// Assessment is the phase-0 deliverable: the scored item list plus all
// derived outputs. Derived fields are recomputed wholesale on every save;
// stored values are never trusted.
type Assessment struct {
	Items              []AssessmentItem
	ImprovementActions []ImprovementAction
	TotalScore         float64
	MaxScore           int
	PercentageScore    int
}
