package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iho/splitledger/internal/adapter/http/handler"
	"github.com/iho/splitledger/internal/adapter/http/middleware"
	"github.com/iho/splitledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LedgerHandler     *handler.LedgerHandler
	ExpenseHandler    *handler.ExpenseHandler
	SettlementHandler *handler.SettlementHandler
	CardHandler       *handler.CardHandler
	ObligationHandler *handler.ObligationHandler
	HealthHandler     *handler.HealthHandler
	IdempotencyStore  usecase.IdempotencyStore
	RateLimiter       *middleware.RateLimiter
	Logger            *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logger != nil {
		r.Use(cfg.Logger.Wrap)
	}
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Ledgers and everything recorded in them
		r.Route("/ledgers", func(r chi.Router) {
			r.Post("/", cfg.LedgerHandler.Create)
			r.Get("/", cfg.LedgerHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", cfg.LedgerHandler.Get)
				r.Delete("/", cfg.LedgerHandler.Delete)
				r.Post("/members", cfg.LedgerHandler.AddMember)
				r.Get("/balances", cfg.LedgerHandler.Balances)
				r.Get("/settlement-plan", cfg.LedgerHandler.SettlementPlan)

				r.Route("/expenses", func(r chi.Router) {
					r.Post("/", cfg.ExpenseHandler.Create)
					r.Get("/", cfg.ExpenseHandler.List)
					r.Get("/{expenseID}", cfg.ExpenseHandler.Get)
					r.Put("/{expenseID}", cfg.ExpenseHandler.Update)
					r.Delete("/{expenseID}", cfg.ExpenseHandler.Delete)
				})

				r.Route("/settlements", func(r chi.Router) {
					r.Post("/", cfg.SettlementHandler.Create)
					r.Get("/", cfg.SettlementHandler.List)
				})
			})
		})

		// Per-user card registry and obligation projection
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Route("/cards", func(r chi.Router) {
				r.Post("/", cfg.CardHandler.Register)
				r.Get("/", cfg.CardHandler.List)
				r.Delete("/{cardID}", cfg.CardHandler.Remove)
			})

			r.Route("/obligations", func(r chi.Router) {
				r.Get("/", cfg.ObligationHandler.List)
				r.Post("/reconcile", cfg.ObligationHandler.Reconcile)
			})
		})
	})

	return r
}
