package catalog

import (
	"testing"

	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssessmentItems_ReturnsCopy(t *testing.T) {
	first := NewAssessmentItems()
	first[0].Achieved = 5
	first[0].Comments = "scored"

	second := NewAssessmentItems()

	assert.Equal(t, 0.0, second[0].Achieved)
	assert.Empty(t, second[0].Comments)
}

func TestAssessmentItems_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range NewAssessmentItems() {
		assert.False(t, seen[item.ID], "duplicate item ID %s", item.ID)
		seen[item.ID] = true
	}
}

func TestAssessmentItems_WellFormed(t *testing.T) {
	items := NewAssessmentItems()
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.NotEmpty(t, item.ActivityCode, "item %s", item.ID)
		assert.NotEmpty(t, item.Description, "item %s", item.ID)
		assert.Greater(t, item.MaxScore, 0, "item %s", item.ID)
		assert.Zero(t, item.Achieved, "catalog items start unscored")
	}
}

func TestAssessmentItems_ActivityCodesRouteToValidPhases(t *testing.T) {
	want := map[string]int{
		"1.1": 1, "1.2": 1, "1.3": 2, "1.4": 2,
		"1.5": 3, "1.7": 4, "1.6": 5, "1.8": 6,
	}
	for _, item := range NewAssessmentItems() {
		phase := engine.PhaseForActivity(item.ActivityCode)
		assert.True(t, domain.ValidPhase(phase), "item %s routes to phase %d", item.ID, phase)
		assert.Equal(t, want[item.ActivityCode], phase, "item %s", item.ID)
	}
}

func TestPhaseChecklist_AllPhasesPopulated(t *testing.T) {
	for phase := domain.FirstPhase; phase <= domain.LastPhase; phase++ {
		items := PhaseChecklist(phase)
		require.NotEmpty(t, items, "phase %d", phase)
		for _, item := range items {
			assert.NotEmpty(t, item.ID, "phase %d", phase)
			assert.NotEmpty(t, item.Description, "phase %d item %s", phase, item.ID)
			assert.NotEmpty(t, item.Deliverable, "phase %d item %s", phase, item.ID)
		}
	}
}

func TestPhaseChecklist_UniqueIDsAcrossPhases(t *testing.T) {
	seen := make(map[string]int)
	for phase := domain.FirstPhase; phase <= domain.LastPhase; phase++ {
		for _, item := range PhaseChecklist(phase) {
			prev, dup := seen[item.ID]
			assert.False(t, dup, "item %s appears in phases %d and %d", item.ID, prev, phase)
			seen[item.ID] = phase
		}
	}
}

func TestPhaseChecklist_OutOfRange(t *testing.T) {
	assert.Nil(t, PhaseChecklist(0))
	assert.Nil(t, PhaseChecklist(-1))
	assert.Nil(t, PhaseChecklist(7))
}

func TestPhaseTitle(t *testing.T) {
	assert.Equal(t, "Maturity Assessment", PhaseTitle(0))
	for phase := domain.FirstPhase; phase <= domain.LastPhase; phase++ {
		assert.NotEmpty(t, PhaseTitle(phase), "phase %d", phase)
	}
	assert.Empty(t, PhaseTitle(7))
}
