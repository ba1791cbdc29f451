package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/config"
	appmiddleware "github.com/maynagashev/nextflix/internal/middleware"
)

const corsMaxAge = 300

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(cfg *config.Config, a *app, registry *prometheus.Registry, log *zap.Logger) *chi.Mux {
	metrics := appmiddleware.NewMetrics(registry)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(appmiddleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(metrics.Instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	}))
	r.Use(chimw.RequestSize(cfg.MaxBodyBytes))

	// --- Служебные маршруты --- //
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	authenticator := appmiddleware.NewAuthenticator(a.tokens, cfg.CookieName, log)

	r.Route(cfg.APIPrefix, func(r chi.Router) {
		// Публичные маршруты
		r.Post("/signup", a.auth.Signup)
		r.Post("/login", a.auth.Login)
		r.Post("/logout", a.auth.Logout)

		r.Get("/home", a.movies.Home)
		r.Get("/movies/{id}", a.movies.GetMovie)
		r.Post("/insert", a.movies.Insert)
		r.Delete("/delete/{movieId}", a.movies.Delete)
		r.Post("/posters", a.posters.Upload)

		r.Get("/users", a.users.List)

		// Приватные маршруты (требуют cookie сессии)
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Post("/movies/watch/{id}", a.lists.ToggleWatchlist)
			r.Post("/movies/fav/{id}", a.lists.ToggleFavorite)
			r.Get("/watchlist", a.lists.Watchlist)
			r.Get("/favorites", a.lists.Favorites)
		})
	})
	return r
}
