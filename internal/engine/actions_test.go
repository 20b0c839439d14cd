package engine

import (
	"strings"
	"testing"

	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityForMax(t *testing.T) {
	tests := []struct {
		max  int
		want domain.Priority
	}{
		{10, domain.PriorityCritical},
		{8, domain.PriorityCritical},
		{7, domain.PriorityHigh},
		{4, domain.PriorityHigh},
		{3, domain.PriorityMedium},
		{2, domain.PriorityMedium},
		{0, domain.PriorityMedium},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, PriorityForMax(tc.max), "max=%d", tc.max)
	}
}

func TestPhaseForActivity(t *testing.T) {
	assert.Equal(t, 1, PhaseForActivity("1.1"))
	assert.Equal(t, 2, PhaseForActivity("1.3"))
	assert.Equal(t, 4, PhaseForActivity("1.7"))
	assert.Equal(t, 5, PhaseForActivity("1.6"))
	assert.Equal(t, 6, PhaseForActivity("1.8"))
}

func TestPhaseForActivity_UnknownCodeDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1, PhaseForActivity("9.9"))
	assert.Equal(t, 1, PhaseForActivity(""))
}

func TestGenerateAction_DeterministicID(t *testing.T) {
	item := testutil.NewTestItem("1.5.2", 4, testutil.WithAchieved(1))

	first := GenerateAction(item)
	second := GenerateAction(item)

	assert.Equal(t, "act-1.5.2", first.ID)
	assert.Equal(t, first, second)
}

func TestGenerateAction_TemplateByCategory(t *testing.T) {
	item := testutil.NewTestItem("1.3.1", 4,
		testutil.WithAchieved(2.5),
		testutil.WithActivityCode("1.3"),
		testutil.WithCategory(domain.CategoryStoreroom),
	)

	act := GenerateAction(item)

	assert.Contains(t, act.Action, "storeroom")
	assert.Contains(t, act.Action, "1.3")
	assert.Contains(t, act.Action, "1.5-point")
	assert.Equal(t, 2, act.Phase)
	assert.Equal(t, domain.PriorityHigh, act.Priority)
	assert.Equal(t, item.Description, act.Rationale)
	assert.Equal(t, "1.3.1", act.SourceItemID)
}

func TestGenerateAction_UnknownCategoryFallsBackToGeneric(t *testing.T) {
	item := testutil.NewTestItem("x", 2, testutil.WithCategory(domain.Category("Drone Fleet Ops")))

	act := GenerateAction(item)

	assert.True(t, strings.HasPrefix(act.Action, "Improve: "), act.Action)
	assert.Contains(t, act.Action, "gap of 2 points")
}

func TestGenerateAction_GenericTruncatesLongDescriptions(t *testing.T) {
	item := testutil.NewTestItem("x", 2, testutil.WithCategory(domain.Category("unmapped")))
	item.Description = strings.Repeat("a", 250)

	act := GenerateAction(item)

	assert.Contains(t, act.Action, strings.Repeat("a", 100))
	assert.NotContains(t, act.Action, strings.Repeat("a", 101))
}

func TestGenerateActions_OneActionPerGap(t *testing.T) {
	items := []domain.AssessmentItem{
		testutil.NewTestItem("1.1.1", 8, testutil.WithAchieved(0)),
		testutil.NewTestItem("1.1.2", 2, testutil.WithAchieved(2)),
	}

	actions := GenerateActions(items)

	require.Len(t, actions, 1)
	assert.Equal(t, "act-1.1.1", actions[0].ID)
	assert.Equal(t, domain.PriorityCritical, actions[0].Priority)
	assert.Contains(t, actions[0].Action, "8")
}

func TestGenerateActions_SortedOnReturn(t *testing.T) {
	items := []domain.AssessmentItem{
		testutil.NewTestItem("m", 2, testutil.WithActivityCode("1.8")),  // medium, phase 6
		testutil.NewTestItem("c", 8, testutil.WithActivityCode("1.5")),  // critical, phase 3
		testutil.NewTestItem("h", 4, testutil.WithActivityCode("1.1")),  // high, phase 1
	}

	actions := GenerateActions(items)

	require.Len(t, actions, 3)
	assert.Equal(t, "act-c", actions[0].ID)
	assert.Equal(t, "act-h", actions[1].ID)
	assert.Equal(t, "act-m", actions[2].ID)
}
