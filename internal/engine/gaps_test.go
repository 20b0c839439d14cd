package engine

import (
	"testing"

	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectGaps_OnlyItemsBelowMax(t *testing.T) {
	items := []domain.AssessmentItem{
		testutil.NewTestItem("1.1.1", 8, testutil.WithAchieved(0)),
		testutil.NewTestItem("1.1.2", 2, testutil.WithAchieved(2)),
		testutil.NewTestItem("1.2.1", 4, testutil.WithAchieved(3)),
	}

	gaps := DetectGaps(items)

	require.Len(t, gaps, 2)
	assert.Equal(t, "1.1.1", gaps[0].ID)
	assert.Equal(t, "1.2.1", gaps[1].ID)
}

func TestDetectGaps_ExactMaxIsNoGap(t *testing.T) {
	items := []domain.AssessmentItem{
		testutil.NewTestItem("a", 4, testutil.WithAchieved(4.0)),
	}
	assert.Empty(t, DetectGaps(items))
}

func TestDetectGaps_FractionalUnderScoreIsAGap(t *testing.T) {
	// Assessors who intentionally under-score by 0.1 get an action.
	items := []domain.AssessmentItem{
		testutil.NewTestItem("a", 4, testutil.WithAchieved(3.9)),
	}
	gaps := DetectGaps(items)
	require.Len(t, gaps, 1)
	assert.InDelta(t, 0.1, gaps[0].Gap(), 1e-9)
}

func TestDetectGaps_ClampsBeforeComparing(t *testing.T) {
	items := []domain.AssessmentItem{
		testutil.NewTestItem("over", 4, testutil.WithAchieved(7)),   // clamps to 4: no gap
		testutil.NewTestItem("under", 4, testutil.WithAchieved(-1)), // clamps to 0: gap of 4
	}

	gaps := DetectGaps(items)

	require.Len(t, gaps, 1)
	assert.Equal(t, "under", gaps[0].ID)
	assert.Equal(t, 0.0, gaps[0].Achieved)
}

func TestDetectGaps_PreservesInputOrder(t *testing.T) {
	items := []domain.AssessmentItem{
		testutil.NewTestItem("c", 2, testutil.WithAchieved(0)),
		testutil.NewTestItem("a", 2, testutil.WithAchieved(0)),
		testutil.NewTestItem("b", 2, testutil.WithAchieved(0)),
	}

	gaps := DetectGaps(items)

	require.Len(t, gaps, 3)
	assert.Equal(t, "c", gaps[0].ID)
	assert.Equal(t, "a", gaps[1].ID)
	assert.Equal(t, "b", gaps[2].ID)
}

func TestDetectGaps_EmptyInput(t *testing.T) {
	assert.Empty(t, DetectGaps(nil))
}
