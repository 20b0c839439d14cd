package service

import (
	"context"
	"testing"

	"github.com/lucasferrand/pathex/internal/catalog"
	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/repository"
	"github.com/lucasferrand/pathex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatusFixture(t *testing.T) (StatusService, AssessmentService, ProgressService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	assessments := NewAssessmentService(repository.NewSQLiteDeliverableRepo(database))
	progress := NewProgressService(
		repository.NewSQLiteProgressRepo(database),
		testutil.NewTestUoW(database),
	)
	return NewStatusService(assessments, progress), assessments, progress
}

func TestStatusService_FreshScope(t *testing.T) {
	status, _, _ := newStatusFixture(t)

	resp, err := status.GetStatus(context.Background(), testutil.TestScope("default"))

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Overall)
	assert.Equal(t, domain.FirstPhase, resp.CurrentPhase)
	assert.Equal(t, "Foundations & Equipment Records", resp.CurrentPhaseTitle)
	assert.Nil(t, resp.Assessment, "no assessment saved yet")
	require.Len(t, resp.Phases, domain.LastPhase)
	for _, view := range resp.Phases {
		assert.Equal(t, domain.PhaseNotStarted, view.State)
		assert.Equal(t, 0, view.DoneCount)
		assert.Greater(t, view.TotalCount, 0)
		assert.NotEmpty(t, view.Title)
	}
}

func TestStatusService_ReflectsProgressAndAssessment(t *testing.T) {
	status, assessments, progress := newStatusFixture(t)
	ctx := context.Background()
	scope := testutil.TestScope("default")

	_, err := assessments.Save(ctx, scope, scoreCatalog(0))
	require.NoError(t, err)

	checkAllItems(t, progress, scope, 1)
	_, err = progress.Complete(ctx, scope, 1)
	require.NoError(t, err)

	items := catalog.PhaseChecklist(2)
	_, err = progress.Toggle(ctx, scope, 2, items[0].ID, true)
	require.NoError(t, err)

	resp, err := status.GetStatus(ctx, scope)
	require.NoError(t, err)

	// Phase 1 done, phase 2 at 20%: round((100+20)/6) = 20.
	assert.Equal(t, 20, resp.Overall)
	assert.Equal(t, 2, resp.CurrentPhase)

	phase1 := resp.Phases[0]
	assert.Equal(t, domain.PhaseCompleted, phase1.State)
	assert.NotNil(t, phase1.CompletedAt)
	assert.Equal(t, phase1.TotalCount, phase1.DoneCount)

	phase2 := resp.Phases[1]
	assert.Equal(t, domain.PhaseInProgress, phase2.State)
	assert.Equal(t, 1, phase2.DoneCount)

	require.NotNil(t, resp.Assessment)
	assert.Equal(t, 0, resp.Assessment.PercentageScore)
	assert.Equal(t, resp.Assessment.ItemCount, resp.Assessment.GapCount)
	assert.Equal(t, resp.Assessment.GapCount, resp.Assessment.ActionCount)
}
