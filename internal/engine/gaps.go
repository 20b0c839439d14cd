package engine

import "github.com/lucasferrand/pathex/internal/domain"

// DetectGaps returns the subsequence of items whose achieved score is
// below their maximum, in input order. Scores are clamped into
// [0, MaxScore] first. The comparison is exact: achieved == maximum means
// no gap, so an intentional fractional under-score (e.g. 0.1 below max)
// still produces a gap.
func DetectGaps(items []domain.AssessmentItem) []domain.AssessmentItem {
	var gaps []domain.AssessmentItem
	for _, item := range items {
		item.Clamp()
		if item.Achieved < float64(item.MaxScore) {
			gaps = append(gaps, item)
		}
	}
	return gaps
}
