package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/REslim30/palette-pal-backend/internal/model"
	"github.com/REslim30/palette-pal-backend/internal/repository"
	"github.com/REslim30/palette-pal-backend/pkg/apierror"
)

func validPaletteRequest() model.PaletteRequest {
	return model.PaletteRequest{
		Name: "Sunset",
		Colors: []model.Color{
			{Name: "orange", Shades: []string{"#ff9900", "#cc7a00"}},
			{Name: "violet", Shades: []string{"#8800ff"}},
		},
	}
}

func TestPaletteCreateAndGet(t *testing.T) {
	svc := NewPaletteService(repository.NewMemoryPaletteRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", validPaletteRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "user-1", created.UserID)

	fetched, err := svc.Get(ctx, "user-1", created.ID)
	require.NoError(t, err)
	require.Equal(t, created, fetched)
}

func TestPaletteValidation(t *testing.T) {
	svc := NewPaletteService(repository.NewMemoryPaletteRepository())

	req := model.PaletteRequest{
		Colors: []model.Color{
			{Name: "", Shades: []string{"#12345"}},
			{Name: "fine", Shades: []string{"#aabbcc", "red"}},
		},
	}

	_, err := svc.Create(context.Background(), "user-1", req)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apierror.CauseRequired, apiErr.Fields["name"])
	require.Equal(t, apierror.CauseRequired, apiErr.Fields["colors.0.name"])
	require.Equal(t, apierror.CauseRegexp, apiErr.Fields["colors.0.shades.0"])
	require.Equal(t, apierror.CauseRegexp, apiErr.Fields["colors.1.shades.1"])
}

func TestPaletteScopedToOwner(t *testing.T) {
	svc := NewPaletteService(repository.NewMemoryPaletteRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", validPaletteRequest())
	require.NoError(t, err)

	_, err = svc.Get(ctx, "user-2", created.ID)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "No palette found for id: "+created.ID, apiErr.Message)

	palettes, err := svc.List(ctx, "user-2")
	require.NoError(t, err)
	require.Empty(t, palettes)
}

func TestPaletteUpdateAndDelete(t *testing.T) {
	svc := NewPaletteService(repository.NewMemoryPaletteRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", validPaletteRequest())
	require.NoError(t, err)

	updatedReq := validPaletteRequest()
	updatedReq.Name = "Sunrise"
	updated, err := svc.Update(ctx, "user-1", created.ID, updatedReq)
	require.NoError(t, err)
	require.Equal(t, "Sunrise", updated.Name)

	require.NoError(t, svc.Delete(ctx, "user-1", created.ID))

	_, err = svc.Get(ctx, "user-1", created.ID)
	require.Error(t, err)
}

func TestPaletteDeleteUnknownID(t *testing.T) {
	svc := NewPaletteService(repository.NewMemoryPaletteRepository())

	err := svc.Delete(context.Background(), "user-1", "missing-id")
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "No palette found for id: missing-id", apiErr.Message)
}
