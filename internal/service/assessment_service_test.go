package service

import (
	"context"
	"testing"

	"github.com/lucasferrand/pathex/internal/catalog"
	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/engine"
	"github.com/lucasferrand/pathex/internal/repository"
	"github.com/lucasferrand/pathex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssessmentService(t *testing.T) AssessmentService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewAssessmentService(repository.NewSQLiteDeliverableRepo(database))
}

func scoreCatalog(score float64) []domain.AssessmentItem {
	items := catalog.NewAssessmentItems()
	for i := range items {
		items[i].Achieved = score
	}
	return items
}

func TestAssessmentService_SaveAndGet(t *testing.T) {
	svc := newAssessmentService(t)
	ctx := context.Background()
	scope := testutil.TestScope("default")

	items := catalog.NewAssessmentItems()
	items[0].Achieved = 3 // 1.1.1, max 8: gap
	items[0].Comments = "register covers mobile fleet only"
	for i := 1; i < len(items); i++ {
		items[i].Achieved = float64(items[i].MaxScore)
	}

	saved, err := svc.Save(ctx, scope, items)
	require.NoError(t, err)
	require.Len(t, saved.ImprovementActions, 1)
	assert.Equal(t, "act-1.1.1", saved.ImprovementActions[0].ID)

	got, err := svc.Get(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, saved.TotalScore, got.TotalScore)
	assert.Equal(t, saved.PercentageScore, got.PercentageScore)
	assert.Equal(t, "register covers mobile fleet only", got.Items[0].Comments)
	require.Len(t, got.ImprovementActions, 1)
	assert.Equal(t, domain.PriorityCritical, got.ImprovementActions[0].Priority)
}

func TestAssessmentService_GetBeforeFirstSave(t *testing.T) {
	svc := newAssessmentService(t)

	_, err := svc.Get(context.Background(), testutil.TestScope("default"))

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAssessmentService_ResaveReplacesActionsWholesale(t *testing.T) {
	svc := newAssessmentService(t)
	ctx := context.Background()
	scope := testutil.TestScope("default")

	items := scoreCatalog(0)
	first, err := svc.Save(ctx, scope, items)
	require.NoError(t, err)
	require.Len(t, first.ImprovementActions, len(items))

	// Close every gap; every action disappears.
	for i := range items {
		items[i].Achieved = float64(items[i].MaxScore)
	}
	second, err := svc.Save(ctx, scope, items)
	require.NoError(t, err)
	assert.Empty(t, second.ImprovementActions)
	assert.Equal(t, 100, second.PercentageScore)

	got, err := svc.Get(ctx, scope)
	require.NoError(t, err)
	assert.Empty(t, got.ImprovementActions)
}

func TestAssessmentService_ActionsForPhase(t *testing.T) {
	svc := newAssessmentService(t)
	ctx := context.Background()
	scope := testutil.TestScope("default")

	_, err := svc.Save(ctx, scope, scoreCatalog(0))
	require.NoError(t, err)

	all, err := svc.Actions(ctx, scope)
	require.NoError(t, err)

	total := 0
	for phase := domain.FirstPhase; phase <= domain.LastPhase; phase++ {
		actions, err := svc.ActionsForPhase(ctx, scope, phase)
		require.NoError(t, err)
		for _, a := range actions {
			assert.Equal(t, phase, a.Phase)
		}
		total += len(actions)
	}
	assert.Equal(t, len(all), total, "every action belongs to exactly one phase")
}

func TestAssessmentService_ActionsForInvalidPhase(t *testing.T) {
	svc := newAssessmentService(t)

	_, err := svc.ActionsForPhase(context.Background(), testutil.TestScope("default"), 0)

	assert.ErrorIs(t, err, engine.ErrInvalidPhase)
}

func TestAssessmentService_ScopesAreIsolated(t *testing.T) {
	svc := newAssessmentService(t)
	ctx := context.Background()

	acme := domain.Scope{SubjectID: "default", ClientID: "acme"}
	zenith := domain.Scope{SubjectID: "default", ClientID: "zenith"}

	_, err := svc.Save(ctx, acme, scoreCatalog(0))
	require.NoError(t, err)

	_, err = svc.Get(ctx, zenith)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
