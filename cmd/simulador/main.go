package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/analytics"
	analytichttp "github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/analytics/http"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/app"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/auth"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/business"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/costs"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/marketcheck"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/pricing"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/products"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := pgxpool.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "simulador_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager)

	businessRepo := business.NewRepository(dbpool)
	businessService := business.NewService(businessRepo)
	businessHandler := business.NewHandler(logger, businessService)

	costsRepo := costs.NewRepository(dbpool)
	costsService := costs.NewService(costsRepo)
	costsHandler := costs.NewHandler(logger, costsService, businessService)

	productsRepo := products.NewRepository(dbpool)
	productsService := products.NewService(productsRepo)
	productsHandler := products.NewHandler(logger, productsService, businessService)

	pricingService := pricing.NewService(productsRepo, cfg.SuggestedMarginPercent)
	pricingHandler := pricing.NewHandler(logger, pricingService, businessService)

	marketHandler := marketcheck.NewHandler(logger, costsService, businessService)

	analyticsService := analytics.NewService(pricingService, costsService)
	analyticsHandler := analytichttp.NewHandler(logger, analyticsService, businessService, costsService)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		SessionManager:   sessionManager,
		AuthHandler:      authHandler,
		BusinessHandler:  businessHandler,
		CostsHandler:     costsHandler,
		ProductsHandler:  productsHandler,
		PricingHandler:   pricingHandler,
		MarketHandler:    marketHandler,
		AnalyticsHandler: analyticsHandler,
		Pool:             dbpool,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
