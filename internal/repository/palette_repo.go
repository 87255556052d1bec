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

type PaletteRepository struct {
	pool *pgxpool.Pool
}

func NewPaletteRepository(pool *pgxpool.Pool) *PaletteRepository {
	return &PaletteRepository{pool: pool}
}

func (r *PaletteRepository) Create(ctx context.Context, p model.Palette) error {
	now := time.Now().UTC()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO palettes (id, user_id, name, colors, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.UserID, p.Name, p.Colors, now, now)
	if err != nil {
		return fmt.Errorf("create palette: %w", err)
	}
	return nil
}

func (r *PaletteRepository) FindByID(ctx context.Context, userID string, id string) (model.Palette, error) {
	var p model.Palette
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, colors FROM palettes
		 WHERE id = $1 AND user_id = $2`, id, userID).
		Scan(&p.ID, &p.UserID, &p.Name, &p.Colors)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Palette{}, model.ErrPaletteNotFound
	}
	if err != nil {
		return model.Palette{}, fmt.Errorf("find palette: %w", err)
	}
	return p, nil
}

func (r *PaletteRepository) FindByUser(ctx context.Context, userID string) ([]model.Palette, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, colors FROM palettes
		 WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("list palettes: %w", err)
	}
	defer rows.Close()

	palettes := make([]model.Palette, 0)
	for rows.Next() {
		var p model.Palette
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Colors); err != nil {
			return nil, fmt.Errorf("scan palette: %w", err)
		}
		palettes = append(palettes, p)
	}
	return palettes, rows.Err()
}

func (r *PaletteRepository) Update(ctx context.Context, p model.Palette) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE palettes SET name = $3, colors = $4, updated_at = $5
		 WHERE id = $1 AND user_id = $2`,
		p.ID, p.UserID, p.Name, p.Colors, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update palette: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPaletteNotFound
	}
	return nil
}

func (r *PaletteRepository) Delete(ctx context.Context, userID string, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM palettes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete palette: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPaletteNotFound
	}
	return nil
}
