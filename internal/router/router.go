package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/REslim30/palette-pal-backend/internal/config"
	"github.com/REslim30/palette-pal-backend/internal/handler"
	"github.com/REslim30/palette-pal-backend/internal/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Palette *handler.PaletteHandler
	Group   *handler.GroupHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, handlers Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.With(middleware.RequireJSON).Post("/register", handlers.Auth.Register)
		api.With(middleware.RequireJSON).Post("/login", handlers.Auth.Login)
		api.Post("/refresh", handlers.Auth.Refresh)
		api.Post("/logout", handlers.Auth.Logout)
		api.With(authMiddleware.RequireAuth).Get("/users/me", handlers.Auth.Me)

		api.Route("/palettes", func(palettes chi.Router) {
			palettes.Use(authMiddleware.RequireAuth)
			palettes.With(middleware.RequireJSON).Post("/", handlers.Palette.Create)
			palettes.Get("/", handlers.Palette.List)
			palettes.Get("/{id}", handlers.Palette.Get)
			palettes.With(middleware.RequireJSON).Put("/{id}", handlers.Palette.Update)
			palettes.Delete("/{id}", handlers.Palette.Delete)
		})

		api.Route("/groups", func(groups chi.Router) {
			groups.Use(authMiddleware.RequireAuth)
			groups.With(middleware.RequireJSON).Post("/", handlers.Group.Create)
			groups.Get("/", handlers.Group.List)
			groups.Get("/{id}", handlers.Group.Get)
			groups.With(middleware.RequireJSON).Put("/{id}", handlers.Group.Update)
			groups.Delete("/{id}", handlers.Group.Delete)
		})
	})

	return r
}
