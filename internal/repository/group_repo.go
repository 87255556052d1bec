package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/REslim30/palette-pal-backend/internal/model"
)

type GroupRepository struct {
	pool *pgxpool.Pool
}

func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

func (r *GroupRepository) Create(ctx context.Context, g model.Group) error {
	now := time.Now().UTC()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO groups (id, user_id, name, palette_ids, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		g.ID, g.UserID, g.Name, g.Palettes, now, now)
	if err != nil {
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

func (r *GroupRepository) FindByID(ctx context.Context, userID string, id string) (model.Group, error) {
	var g model.Group
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, palette_ids FROM groups
		 WHERE id = $1 AND user_id = $2`, id, userID).
		Scan(&g.ID, &g.UserID, &g.Name, &g.Palettes)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Group{}, model.ErrGroupNotFound
	}
	if err != nil {
		return model.Group{}, fmt.Errorf("find group: %w", err)
	}
	return g, nil
}

func (r *GroupRepository) FindByUser(ctx context.Context, userID string) ([]model.Group, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, palette_ids FROM groups
		 WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	groups := make([]model.Group, 0)
	for rows.Next() {
		var g model.Group
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.Palettes); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *GroupRepository) Update(ctx context.Context, g model.Group) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE groups SET name = $3, palette_ids = $4, updated_at = $5
		 WHERE id = $1 AND user_id = $2`,
		g.ID, g.UserID, g.Name, g.Palettes, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrGroupNotFound
	}
	return nil
}

func (r *GroupRepository) Delete(ctx context.Context, userID string, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM groups WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrGroupNotFound
	}
	return nil
}
