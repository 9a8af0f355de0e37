package router

import (
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/dtroode/gocalendar/internal/api/http/handler"
	"github.com/dtroode/gocalendar/internal/api/http/middleware"
	"github.com/dtroode/gocalendar/internal/logger"
	"github.com/dtroode/gocalendar/internal/model"
)

// Options tunes cross-cutting behavior of the router.
type Options struct {
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
}

// Router wires REST handlers and middleware.
type Router struct {
	authService    handler.AuthService
	entryService   handler.EntryService
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
	opts           Options
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	entryService handler.EntryService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
	opts Options,
) *Router {
	return &Router{
		authService:    authService,
		entryService:   entryService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
		opts:           opts,
	}
}

// Register builds the request handler with all routes.
func (r *Router) Register() http.Handler {
	mux := http.NewServeMux()
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	r.registerAuthRoutes(mux, authenticate)
	r.registerEntryRoutes(mux, authenticate)
	mux.HandleFunc("GET /health", handler.Health)

	var h http.Handler = mux
	h = middleware.Timeout(r.opts.RequestTimeout)(h)
	h = middleware.NewRecover(r.logger).Handle(h)
	h = r.cors().Handler(h)
	h = middleware.NewLogging(r.logger).Handle(h)

	return h
}

func (r *Router) registerAuthRoutes(mux *http.ServeMux, authenticate *middleware.Authenticate) {
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("POST /api/auth/logout", authenticate.Handle(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/auth/me", authenticate.Handle(http.HandlerFunc(authHandler.Me)))
}

func (r *Router) registerEntryRoutes(mux *http.ServeMux, authenticate *middleware.Authenticate) {
	entryHandler := handler.NewEntry(r.entryService, r.contextManager, r.logger)
	protect := func(f http.HandlerFunc) http.Handler {
		return authenticate.Handle(f)
	}

	mux.Handle("POST /api/calendar", protect(entryHandler.Create))
	mux.Handle("GET /api/calendar", protect(entryHandler.List))
	mux.Handle("GET /api/calendar/export.ics", protect(entryHandler.Export))
	mux.Handle("PUT /api/calendar/{id}", protect(entryHandler.Update))
	mux.Handle("DELETE /api/calendar/{id}", protect(entryHandler.Delete))
}

func (r *Router) cors() *cors.Cors {
	origins := r.opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         600,
	})
}
