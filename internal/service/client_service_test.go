package service

import (
	"context"
	"testing"

	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/repository"
	"github.com/lucasferrand/pathex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientService(t *testing.T) ClientService {
	t.Helper()
	return NewClientService(repository.NewSQLiteClientRepo(testutil.NewTestDB(t)))
}

func TestClientService_CreateDefaults(t *testing.T) {
	svc := newClientService(t)
	ctx := context.Background()

	c := &domain.Client{Name: "Acme Paper", Site: "Mill 4"}
	require.NoError(t, svc.Create(ctx, c))
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.ClientActive, c.Status)
	assert.False(t, c.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mill 4", got.Site)
}

func TestClientService_CreateRequiresName(t *testing.T) {
	svc := newClientService(t)

	err := svc.Create(context.Background(), &domain.Client{Site: "Mill 4"})

	assert.Error(t, err)
}

func TestClientService_ArchiveHidesFromDefaultList(t *testing.T) {
	svc := newClientService(t)
	ctx := context.Background()

	c := &domain.Client{Name: "Acme Paper"}
	require.NoError(t, svc.Create(ctx, c))
	require.NoError(t, svc.Archive(ctx, c.ID))

	visible, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, domain.ClientArchived, all[0].Status)
}
