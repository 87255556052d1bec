package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/REslim30/palette-pal-backend/internal/config"
	"github.com/REslim30/palette-pal-backend/internal/database"
	"github.com/REslim30/palette-pal-backend/internal/handler"
	"github.com/REslim30/palette-pal-backend/internal/middleware"
	"github.com/REslim30/palette-pal-backend/internal/registry"
	"github.com/REslim30/palette-pal-backend/internal/repository"
	"github.com/REslim30/palette-pal-backend/internal/router"
	"github.com/REslim30/palette-pal-backend/internal/service"
	"github.com/REslim30/palette-pal-backend/internal/token"
)

type App struct {
	server       *http.Server
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, database.PoolSettings{
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: cfg.DBConnMaxLifetime,
		MaxConnIdleTime: cfg.DBConnMaxIdleTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	cleanupFuncs := []func(){db.Close}

	tokenRegistry, cleanup, err := newRegistry(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}
	if cleanup != nil {
		cleanupFuncs = append(cleanupFuncs, cleanup)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	paletteRepo := repository.NewPaletteRepository(pool)
	groupRepo := repository.NewGroupRepository(pool)

	issuer := token.NewIssuer(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL)
	authService := service.NewAuthService(userRepo, tokenRegistry, issuer)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	handlers := router.Handlers{
		Auth:    handler.NewAuthHandler(authService, cfg.RefreshTokenTTL),
		Palette: handler.NewPaletteHandler(service.NewPaletteService(paletteRepo)),
		Group:   handler.NewGroupHandler(service.NewGroupService(groupRepo)),
	}

	appRouter := router.New(cfg, authMiddleware, handlers)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{server: server, cleanupFuncs: cleanupFuncs}, nil
}

// newRegistry picks the Redis-backed registry when REDIS_URL is set, otherwise
// the in-memory fallback. Only Redis makes refresh sessions survive restarts.
func newRegistry(cfg *config.Config) (registry.Registry, func(), error) {
	if cfg.RedisURL == "" {
		slog.Warn("REDIS_URL not set; refresh-token registry is in-memory and will not survive restarts")
		return registry.NewMemoryRegistry(cfg.RefreshTokenTTL), nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	slog.Info("redis connected", "addr", opts.Addr)
	return registry.NewRedisRegistry(client, cfg.RefreshTokenTTL), func() { _ = client.Close() }, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}
