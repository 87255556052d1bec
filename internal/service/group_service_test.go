package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/REslim30/palette-pal-backend/internal/model"
	"github.com/REslim30/palette-pal-backend/internal/repository"
	"github.com/REslim30/palette-pal-backend/pkg/apierror"
)

func TestGroupCreateAndGet(t *testing.T) {
	svc := NewGroupService(repository.NewMemoryGroupRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", model.GroupRequest{
		Name:     "Favorites",
		Palettes: []string{"palette-1", "palette-2"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, []string{"palette-1", "palette-2"}, created.Palettes)

	fetched, err := svc.Get(ctx, "user-1", created.ID)
	require.NoError(t, err)
	require.Equal(t, created, fetched)
}

func TestGroupRequiresName(t *testing.T) {
	svc := NewGroupService(repository.NewMemoryGroupRepository())

	_, err := svc.Create(context.Background(), "user-1", model.GroupRequest{})
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apierror.CauseRequired, apiErr.Fields["name"])
}

func TestGroupScopedToOwner(t *testing.T) {
	svc := NewGroupService(repository.NewMemoryGroupRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", model.GroupRequest{Name: "Favorites"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "user-2", created.ID)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "No group found for id: "+created.ID, apiErr.Message)
}

func TestGroupUpdateAndDelete(t *testing.T) {
	svc := NewGroupService(repository.NewMemoryGroupRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", model.GroupRequest{Name: "Favorites"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "user-1", created.ID, model.GroupRequest{
		Name:     "Archived",
		Palettes: []string{"palette-9"},
	})
	require.NoError(t, err)
	require.Equal(t, "Archived", updated.Name)
	require.Equal(t, []string{"palette-9"}, updated.Palettes)

	require.NoError(t, svc.Delete(ctx, "user-1", created.ID))

	_, err = svc.Get(ctx, "user-1", created.ID)
	require.Error(t, err)
}
