// Package api serves the advisor over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/advisor"
	"github.com/sells-group/advisor-cli/internal/config"
)

// Server is the HTTP front end of an advisor.Service.
type Server struct {
	router  *chi.Mux
	server  *http.Server
	svc     *advisor.Service
	limiter *clientLimiter
}

// New creates a server listening on cfg.Port.
func New(cfg config.ServerConfig, svc *advisor.Service) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		svc:     svc,
		limiter: newClientLimiter(cfg.RatePerSec, cfg.Burst),
	}

	s.setupMiddleware(cfg)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupMiddleware(cfg config.ServerConfig) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(loggingMiddleware)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(s.limiter.middleware)
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/questions", s.handleQuestions)

		r.Route("/portfolios", func(r chi.Router) {
			r.Get("/", s.handlePortfolios)
			r.Get("/{id}", s.handlePortfolio)
		})

		r.Route("/assessments", func(r chi.Router) {
			r.Post("/", s.handleCreateAssessment)
			r.Get("/", s.handleListAssessments)
			r.Get("/{id}", s.handleGetAssessment)
			r.Delete("/{id}", s.handleDeleteAssessment)
		})

		r.Post("/plans", s.handleCreatePlan)

		r.Route("/strategies", func(r chi.Router) {
			r.Get("/", s.handleStrategies)
			r.Post("/recommendations", s.handleRecommendStrategies)
		})
	})
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	zap.L().Info("api: starting server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "api: listen")
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	zap.L().Info("api: shutting down server")
	return eris.Wrap(s.server.Shutdown(ctx), "api: shutdown")
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		zap.L().Info("api: request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
