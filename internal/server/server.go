// Package server provides the HTTP REST API for JobSprint.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jobsprint/jobsprint/internal/billing"
	"github.com/jobsprint/jobsprint/internal/cache"
	"github.com/jobsprint/jobsprint/internal/config"
	"github.com/jobsprint/jobsprint/internal/db"
	"github.com/jobsprint/jobsprint/internal/server/middleware"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	cache       *cache.Cache
	logger      *zap.Logger
	masterCodes billing.MasterCodes
	rateLimit   int
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// New creates a new server instance. The cache is optional: with no redis
// address configured the server runs without caching or rate limiting.
func New(cfg *config.AppConfig, logger *zap.Logger) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:     database,
		logger: logger,
		masterCodes: billing.MasterCodes{
			Starter: cfg.StarterCode,
			Pro:     cfg.ProCode,
			Premium: cfg.PremiumCode,
		},
		rateLimit: cfg.RateLimitPerMinute,
	}

	if cfg.Redis.Addr != "" {
		s.cache, err = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService, logger)

	mux := http.NewServeMux()
	s.routes(mux)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes registers all endpoints. Everything under /api requires a session
// token; mutating routes additionally pass the entitlement gate. Activation
// and reactivation stay ungated so a lapsed user can renew.
func (s *Server) routes(mux *http.ServeMux) {
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	authed := func(h http.HandlerFunc) http.Handler { return auth(h) }
	gated := func(h http.HandlerFunc) http.Handler { return auth(s.requireActive(h)) }

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("POST /auth/magic-link", s.authHandler.IssueMagicLink)
	mux.HandleFunc("GET /auth/magic-link", s.authHandler.ExchangeMagicLink)
	mux.Handle("POST /auth/activate", authed(s.handleActivate))

	mux.Handle("GET /api/me", authed(s.handleGetMe))

	mux.Handle("GET /api/progress", authed(s.handleGetProgress))
	mux.Handle("POST /api/progress/days/{day}/start", gated(s.handleStartDay))
	mux.Handle("POST /api/progress/days/{day}/complete", gated(s.handleCompleteDay))

	mux.Handle("POST /api/jobs", gated(s.handleCreateJobLead))
	mux.Handle("GET /api/jobs", authed(s.handleListJobLeads))
	mux.Handle("GET /api/jobs/{id}", authed(s.handleGetJobLead))
	mux.Handle("PUT /api/jobs/{id}/status", gated(s.handleUpdateJobLeadStatus))
	mux.Handle("DELETE /api/jobs/{id}", gated(s.handleDeleteJobLead))

	mux.Handle("GET /api/preferences", authed(s.handleGetPreferences))
	mux.Handle("PUT /api/preferences", gated(s.handlePutPreferences))
	mux.Handle("GET /api/career-profile", authed(s.handleGetCareerProfile))
	mux.Handle("PUT /api/career-profile", gated(s.handlePutCareerProfile))
	mux.Handle("GET /api/resume-profile", authed(s.handleGetResumeProfile))
	mux.Handle("PUT /api/resume-profile", gated(s.handlePutResumeProfile))
	mux.Handle("GET /api/networking-profile", authed(s.handleGetNetworkingProfile))
	mux.Handle("PUT /api/networking-profile", gated(s.handlePutNetworkingProfile))

	mux.Handle("GET /api/contacts", authed(s.handleListContacts))
	mux.Handle("POST /api/contacts", gated(s.handleCreateContact))
	mux.Handle("POST /api/contacts/{id}/message-sent", gated(s.handleContactMessageSent))
	mux.Handle("DELETE /api/contacts/{id}", gated(s.handleDeleteContact))

	mux.Handle("GET /api/stories", authed(s.handleListStories))
	mux.Handle("GET /api/stories/{ordinal}", authed(s.handleGetStory))
	mux.Handle("PUT /api/stories/{ordinal}", gated(s.handlePutStory))

	mux.Handle("GET /api/practice-evaluations", authed(s.handleListPracticeEvaluations))
	mux.Handle("POST /api/practice-evaluations", gated(s.handleCreatePracticeEvaluation))

	mux.Handle("GET /api/subscription", authed(s.handleGetSubscription))
	mux.Handle("POST /api/subscription/reactivate", authed(s.handleReactivate))
}

// DB exposes the database handle so the background sweeper can share the
// server's connection pool.
func (s *Server) DB() *db.DB {
	return s.db
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.logger.Warn("cache close failed", zap.Error(err))
		}
	}

	s.db.Close()
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit caps requests per client per minute using the shared cache
// counter. With no cache or a zero limit every request passes.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cache == nil || s.rateLimit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		clientID := s.extractClientID(r)
		count, err := s.cache.IncrementRateLimit(r.Context(), clientID)
		if err != nil {
			// Rate limiting is advisory; a cache failure must not take the
			// API down.
			s.logger.Warn("rate limit check failed", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		remaining := int64(s.rateLimit) - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", s.rateLimit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if count > int64(s.rateLimit) {
			w.Header().Set("Retry-After", "60")
			s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
				"error":   "rate_limit_exceeded",
				"message": "Rate limit exceeded. Please try again later.",
				"limit":   s.rateLimit,
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if err := s.db.Ping(r.Context()); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		s.jsonResponse(w, http.StatusServiceUnavailable, status)
		return
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// handleGetMe returns the authenticated user's profile.
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.userService.Lookup(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, user)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request. Uses the
// IP from RemoteAddr; X-Forwarded-For is deliberately not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
