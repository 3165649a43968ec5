package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	analytichttp "github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/analytics/http"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/auth"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/business"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/costs"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/marketcheck"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/pricing"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/products"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/shared"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	SessionManager   *shared.SessionManager
	AuthHandler      *auth.Handler
	BusinessHandler  *business.Handler
	CostsHandler     *costs.Handler
	ProductsHandler  *products.Handler
	PricingHandler   *pricing.Handler
	MarketHandler    *marketcheck.Handler
	AnalyticsHandler *analytichttp.Handler
	Pool             *pgxpool.Pool
}

// NewRouter constructs the chi.Router for the simulator API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if params.Pool != nil {
			if err := params.Pool.Ping(r.Context()); err != nil {
				params.Logger.Error("health check", slog.Any("error", err))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unavailable"}`))
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		params.AuthHandler.MountRoutes(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser)

		r.Route("/businesses", func(r chi.Router) {
			params.BusinessHandler.MountRoutes(r)

			r.Route("/{businessID}", func(r chi.Router) {
				r.Route("/costs", func(r chi.Router) {
					params.CostsHandler.MountRoutes(r)
					params.MarketHandler.MountRoutes(r)
				})
				r.Route("/products", func(r chi.Router) {
					params.ProductsHandler.MountRoutes(r)
					params.PricingHandler.MountProductRoutes(r)
				})
				r.Route("/additional-costs", func(r chi.Router) {
					params.ProductsHandler.MountAdditionalCostRoutes(r)
				})
				r.Route("/pricing", func(r chi.Router) {
					params.PricingHandler.MountRoutes(r)
				})
				params.AnalyticsHandler.MountRoutes(r)
			})
		})
	})

	return r
}
