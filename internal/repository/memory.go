package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/REslim30/palette-pal-backend/internal/model"
)

// In-memory implementations of the store contracts. They mirror the Postgres
// repositories' observable behavior (including duplicate classification and
// per-user scoping) and back the hermetic test servers.

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[string]model.User{}}
}

func (r *MemoryUserRepository) Create(_ context.Context, u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return model.ErrDuplicateEmail
		}
		if strings.EqualFold(existing.Username, u.Username) {
			return model.ErrDuplicateUsername
		}
	}

	r.users[u.ID] = u
	return nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.users[id]
	if !exists {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (r *MemoryUserRepository) FindByIdentifier(_ context.Context, identifier string) (model.User, error) {
	identifier = strings.TrimSpace(identifier)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, identifier) {
			return u, nil
		}
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Username, identifier) {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

type MemoryPaletteRepository struct {
	mu       sync.RWMutex
	palettes map[string]model.Palette
	order    []string
}

func NewMemoryPaletteRepository() *MemoryPaletteRepository {
	return &MemoryPaletteRepository{palettes: map[string]model.Palette{}}
}

func (r *MemoryPaletteRepository) Create(_ context.Context, p model.Palette) error {
	r.mu.Lock()
	r.palettes[p.ID] = p
	r.order = append(r.order, p.ID)
	r.mu.Unlock()
	return nil
}

func (r *MemoryPaletteRepository) FindByID(_ context.Context, userID string, id string) (model.Palette, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.palettes[id]
	if !exists || p.UserID != userID {
		return model.Palette{}, model.ErrPaletteNotFound
	}
	return p, nil
}

func (r *MemoryPaletteRepository) FindByUser(_ context.Context, userID string) ([]model.Palette, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	palettes := make([]model.Palette, 0)
	for _, id := range r.order {
		if p, exists := r.palettes[id]; exists && p.UserID == userID {
			palettes = append(palettes, p)
		}
	}
	return palettes, nil
}

func (r *MemoryPaletteRepository) Update(_ context.Context, p model.Palette) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.palettes[p.ID]
	if !exists || existing.UserID != p.UserID {
		return model.ErrPaletteNotFound
	}
	r.palettes[p.ID] = p
	return nil
}

func (r *MemoryPaletteRepository) Delete(_ context.Context, userID string, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.palettes[id]
	if !exists || existing.UserID != userID {
		return model.ErrPaletteNotFound
	}
	delete(r.palettes, id)
	return nil
}

type MemoryGroupRepository struct {
	mu     sync.RWMutex
	groups map[string]model.Group
	order  []string
}

func NewMemoryGroupRepository() *MemoryGroupRepository {
	return &MemoryGroupRepository{groups: map[string]model.Group{}}
}

func (r *MemoryGroupRepository) Create(_ context.Context, g model.Group) error {
	r.mu.Lock()
	r.groups[g.ID] = g
	r.order = append(r.order, g.ID)
	r.mu.Unlock()
	return nil
}

func (r *MemoryGroupRepository) FindByID(_ context.Context, userID string, id string) (model.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, exists := r.groups[id]
	if !exists || g.UserID != userID {
		return model.Group{}, model.ErrGroupNotFound
	}
	return g, nil
}

func (r *MemoryGroupRepository) FindByUser(_ context.Context, userID string) ([]model.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groups := make([]model.Group, 0)
	for _, id := range r.order {
		if g, exists := r.groups[id]; exists && g.UserID == userID {
			groups = append(groups, g)
		}
	}
	return groups, nil
}

func (r *MemoryGroupRepository) Update(_ context.Context, g model.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.groups[g.ID]
	if !exists || existing.UserID != g.UserID {
		return model.ErrGroupNotFound
	}
	r.groups[g.ID] = g
	return nil
}

func (r *MemoryGroupRepository) Delete(_ context.Context, userID string, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.groups[id]
	if !exists || existing.UserID != userID {
		return model.ErrGroupNotFound
	}
	delete(r.groups, id)
	return nil
}
