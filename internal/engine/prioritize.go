package engine

import (
	"sort"

	"github.com/lucasferrand/pathex/internal/domain"
)

// PrioritizeActions sorts actions into their presentation order:
// 1. Priority: critical > high > medium
// 2. Target phase: ascending
// Ties keep generation order, which is assessment item order.
func PrioritizeActions(actions []domain.ImprovementAction) {
	sort.SliceStable(actions, func(i, j int) bool {
		a, b := actions[i], actions[j]
		if a.Priority.Weight() != b.Priority.Weight() {
			return a.Priority.Weight() < b.Priority.Weight()
		}
		return a.Phase < b.Phase
	})
}
