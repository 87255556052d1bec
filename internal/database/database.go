package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolSettings carries the pgx pool tunings from configuration so deployments
// can size the palette store connection pool without code changes.
type PoolSettings struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

type DB struct {
	Pool *pgxpool.Pool
}

// New opens the Postgres pool backing users, palettes and groups, and pings it
// before handing it out so wiring fails fast on a bad DATABASE_URL.
func New(ctx context.Context, databaseURL string, settings PoolSettings) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MaxConns = settings.MaxConns
	poolCfg.MinConns = settings.MinConns
	poolCfg.MaxConnLifetime = settings.MaxConnLifetime
	poolCfg.MaxConnIdleTime = settings.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("postgres pool ready",
		"max_conns", settings.MaxConns,
		"min_conns", settings.MinConns,
		"conn_lifetime", settings.MaxConnLifetime,
		"conn_idle", settings.MaxConnIdleTime)
	return &DB{Pool: pool}, nil
}

func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
