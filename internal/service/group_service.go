package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/REslim30/palette-pal-backend/internal/model"
	"github.com/REslim30/palette-pal-backend/pkg/apierror"
)

type GroupStore interface {
	Create(ctx context.Context, g model.Group) error
	FindByID(ctx context.Context, userID string, id string) (model.Group, error)
	FindByUser(ctx context.Context, userID string) ([]model.Group, error)
	Update(ctx context.Context, g model.Group) error
	Delete(ctx context.Context, userID string, id string) error
}

type GroupService struct {
	groups GroupStore
}

func NewGroupService(groups GroupStore) *GroupService {
	return &GroupService{groups: groups}
}

func (s *GroupService) Create(ctx context.Context, userID string, req model.GroupRequest) (model.Group, error) {
	if err := validateGroup(req); err != nil {
		return model.Group{}, err
	}

	group := model.Group{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		Palettes: normalizeIDs(req.Palettes),
		UserID:   userID,
	}

	if err := s.groups.Create(ctx, group); err != nil {
		return model.Group{}, err
	}
	return group, nil
}

func (s *GroupService) Get(ctx context.Context, userID string, id string) (model.Group, error) {
	group, err := s.groups.FindByID(ctx, userID, id)
	if err != nil {
		return model.Group{}, groupError(err, id)
	}
	return group, nil
}

func (s *GroupService) List(ctx context.Context, userID string) ([]model.Group, error) {
	return s.groups.FindByUser(ctx, userID)
}

func (s *GroupService) Update(ctx context.Context, userID string, id string, req model.GroupRequest) (model.Group, error) {
	if err := validateGroup(req); err != nil {
		return model.Group{}, err
	}

	group := model.Group{
		ID:       id,
		Name:     strings.TrimSpace(req.Name),
		Palettes: normalizeIDs(req.Palettes),
		UserID:   userID,
	}

	if err := s.groups.Update(ctx, group); err != nil {
		return model.Group{}, groupError(err, id)
	}
	return group, nil
}

func (s *GroupService) Delete(ctx context.Context, userID string, id string) error {
	if err := s.groups.Delete(ctx, userID, id); err != nil {
		return groupError(err, id)
	}
	return nil
}

func validateGroup(req model.GroupRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apierror.Validation(map[string]string{"name": apierror.CauseRequired})
	}
	return nil
}

func normalizeIDs(ids []string) []string {
	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}

func groupError(err error, id string) error {
	if errors.Is(err, model.ErrGroupNotFound) {
		return apierror.Message("No group found for id: "+id, http.StatusBadRequest)
	}
	return err
}
