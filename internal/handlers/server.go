package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"courses-backend/internal/admin"
	"courses-backend/internal/auth"
	"courses-backend/internal/cache"
	"courses-backend/internal/catalog"
	"courses-backend/internal/config"
	"courses-backend/internal/contact"
	"courses-backend/internal/db"
	"courses-backend/internal/middleware"
	"courses-backend/internal/subscriptions"
	"courses-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the process-wide dependencies shared by every route.
type Server struct {
	Cfg      *config.Config
	Store    *db.Handle
	Val      *validation.Validator
	Log      *slog.Logger
	Cache    cache.Cache
	Auth     *auth.Manager
	Admin    admin.Credentials
	Gatherer prometheus.Gatherer
}

func (s *Server) Routes() http.Handler {
	if s.Store == nil {
		s.Store = db.Disconnected()
	}
	if s.Cache == nil {
		s.Cache = cache.NewNoop()
	}

	catalogHandler := catalog.NewHandler(
		catalog.NewService(catalog.NewRepository(s.Store), s.Log),
		s.Val,
		s.Cache,
		time.Duration(s.Cfg.CacheTTLSeconds)*time.Second,
		s.Log,
	)
	contactHandler := contact.NewHandler(
		contact.NewService(contact.NewRepository(s.Store), s.Cfg.Timezone),
		s.Val,
		s.Log,
	)
	subscriptionsHandler := subscriptions.NewHandler(
		subscriptions.NewService(subscriptions.NewRepository(s.Store), s.Cfg.Timezone),
		s.Val,
		s.Log,
	)
	adminHandler := admin.NewHandler(s.Admin, s.Auth, s.Cfg.CookieSecure, s.Val, s.Log)

	window := time.Duration(s.Cfg.RateLimitWindowSec) * time.Second
	contactLimiter := middleware.NewRateLimiter(s.Cfg.RateLimitContact, window)
	subscribeLimiter := middleware.NewRateLimiter(s.Cfg.RateLimitSubscribe, window)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(s.Log))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(s.Cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.Get("/", s.Root)
	r.Get("/test", s.Diagnostics)
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/categories", catalogHandler.ListCategories)
		api.Get("/categories/{slug}", catalogHandler.GetCategory)
		api.Get("/staff", catalogHandler.ListStaff)
		api.With(contactLimiter.Middleware).Post("/contact", contactHandler.Create)
		api.With(subscribeLimiter.Middleware).Post("/subscribe", subscriptionsHandler.Subscribe)

		api.Route("/admin", func(a chi.Router) {
			a.With(contactLimiter.Middleware).Post("/login", adminHandler.Login)
			a.Post("/logout", adminHandler.Logout)

			a.Group(func(protected chi.Router) {
				protected.Use(middleware.AdminAuth(s.Cfg.AdminAPIKey, s.Auth))
				protected.Get("/contacts", contactHandler.AdminList)
				protected.Get("/subscriptions", subscriptionsHandler.AdminList)
			})
		})
	})

	return r
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
