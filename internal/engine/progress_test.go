package engine

import (
	"testing"

	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/stretchr/testify/assert"
)

func checklist(ids ...string) []domain.ChecklistItem {
	items := make([]domain.ChecklistItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, domain.ChecklistItem{ID: id, Description: "Item " + id})
	}
	return items
}

func TestStepProgress(t *testing.T) {
	catalog := checklist("a", "b", "c", "d")

	tests := []struct {
		name string
		done map[string]bool
		want int
	}{
		{"none done", nil, 0},
		{"half done", map[string]bool{"a": true, "b": true}, 50},
		{"all done", map[string]bool{"a": true, "b": true, "c": true, "d": true}, 100},
		{"unchecked entries ignored", map[string]bool{"a": true, "b": false}, 25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StepProgress(catalog, tc.done))
		})
	}
}

func TestStepProgress_EmptyCatalogIsZero(t *testing.T) {
	assert.Equal(t, 0, StepProgress(nil, map[string]bool{"ghost": true}))
}

func TestStepProgress_StrayKeysDoNotCount(t *testing.T) {
	// Keys for items removed from the catalog must not inflate the result.
	catalog := checklist("a", "b")
	done := map[string]bool{"a": true, "gone": true}
	assert.Equal(t, 50, StepProgress(catalog, done))
}

func TestStepProgress_Rounds(t *testing.T) {
	catalog := checklist("a", "b", "c")
	done := map[string]bool{"a": true} // 33.33 -> 33
	assert.Equal(t, 33, StepProgress(catalog, done))

	done["b"] = true // 66.67 -> 67
	assert.Equal(t, 67, StepProgress(catalog, done))
}

func TestOverallProgress(t *testing.T) {
	tests := []struct {
		name string
		pcts [domain.LastPhase]int
		want int
	}{
		{"nothing started", [domain.LastPhase]int{}, 0},
		{"everything done", [domain.LastPhase]int{100, 100, 100, 100, 100, 100}, 100},
		{"one phase done", [domain.LastPhase]int{100, 0, 0, 0, 0, 0}, 17},
		{"mixed", [domain.LastPhase]int{100, 80, 40, 0, 0, 0}, 37},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OverallProgress(tc.pcts))
		})
	}
}

func TestPhasePercentages_PhaseOrder(t *testing.T) {
	prog := domain.NewProgramProgress(domain.Scope{SubjectID: "s"})
	for i := domain.FirstPhase; i <= domain.LastPhase; i++ {
		prog.Phases[i].Progress = i * 10
	}

	pcts := PhasePercentages(prog)

	assert.Equal(t, [domain.LastPhase]int{10, 20, 30, 40, 50, 60}, pcts)
}
