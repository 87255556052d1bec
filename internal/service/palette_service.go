package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/REslim30/palette-pal-backend/internal/model"
	"github.com/REslim30/palette-pal-backend/pkg/apierror"
)

type PaletteStore interface {
	Create(ctx context.Context, p model.Palette) error
	FindByID(ctx context.Context, userID string, id string) (model.Palette, error)
	FindByUser(ctx context.Context, userID string) ([]model.Palette, error)
	Update(ctx context.Context, p model.Palette) error
	Delete(ctx context.Context, userID string, id string) error
}

type PaletteService struct {
	palettes PaletteStore
}

func NewPaletteService(palettes PaletteStore) *PaletteService {
	return &PaletteService{palettes: palettes}
}

func (s *PaletteService) Create(ctx context.Context, userID string, req model.PaletteRequest) (model.Palette, error) {
	if err := validatePalette(req); err != nil {
		return model.Palette{}, err
	}

	palette := model.Palette{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(req.Name),
		Colors: normalizeColors(req.Colors),
		UserID: userID,
	}

	if err := s.palettes.Create(ctx, palette); err != nil {
		return model.Palette{}, err
	}
	return palette, nil
}

func (s *PaletteService) Get(ctx context.Context, userID string, id string) (model.Palette, error) {
	palette, err := s.palettes.FindByID(ctx, userID, id)
	if err != nil {
		return model.Palette{}, paletteError(err, id)
	}
	return palette, nil
}

func (s *PaletteService) List(ctx context.Context, userID string) ([]model.Palette, error) {
	return s.palettes.FindByUser(ctx, userID)
}

func (s *PaletteService) Update(ctx context.Context, userID string, id string, req model.PaletteRequest) (model.Palette, error) {
	if err := validatePalette(req); err != nil {
		return model.Palette{}, err
	}

	palette := model.Palette{
		ID:     id,
		Name:   strings.TrimSpace(req.Name),
		Colors: normalizeColors(req.Colors),
		UserID: userID,
	}

	if err := s.palettes.Update(ctx, palette); err != nil {
		return model.Palette{}, paletteError(err, id)
	}
	return palette, nil
}

func (s *PaletteService) Delete(ctx context.Context, userID string, id string) error {
	if err := s.palettes.Delete(ctx, userID, id); err != nil {
		return paletteError(err, id)
	}
	return nil
}

func validatePalette(req model.PaletteRequest) error {
	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = apierror.CauseRequired
	}

	for i, color := range req.Colors {
		if strings.TrimSpace(color.Name) == "" {
			fields["colors."+strconv.Itoa(i)+".name"] = apierror.CauseRequired
		}
		for j, shade := range color.Shades {
			if !model.ValidShade(shade) {
				fields[fmt.Sprintf("colors.%d.shades.%d", i, j)] = apierror.CauseRegexp
			}
		}
	}

	if len(fields) > 0 {
		return apierror.Validation(fields)
	}
	return nil
}

func normalizeColors(colors []model.Color) []model.Color {
	normalized := make([]model.Color, 0, len(colors))
	for _, color := range colors {
		shades := make([]string, 0, len(color.Shades))
		shades = append(shades, color.Shades...)
		normalized = append(normalized, model.Color{
			Name:   strings.TrimSpace(color.Name),
			Shades: shades,
		})
	}
	return normalized
}

func paletteError(err error, id string) error {
	if errors.Is(err, model.ErrPaletteNotFound) {
		return apierror.Message("No palette found for id: "+id, http.StatusBadRequest)
	}
	return err
}
