package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/greenvista/landscaping-backend/api/routes"
	"github.com/greenvista/landscaping-backend/internal/leads"
	"github.com/greenvista/landscaping-backend/internal/locations"
	"github.com/greenvista/landscaping-backend/internal/promotions"
	"github.com/greenvista/landscaping-backend/internal/quotes"
	"github.com/greenvista/landscaping-backend/internal/reviews"
	"github.com/greenvista/landscaping-backend/pkg/config"
	"github.com/greenvista/landscaping-backend/pkg/db"
	"github.com/greenvista/landscaping-backend/pkg/logger"
	"github.com/greenvista/landscaping-backend/pkg/metrics"
	"github.com/greenvista/landscaping-backend/pkg/migrate"
	"github.com/greenvista/landscaping-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	quoteMetrics := metrics.NewQuoteMetrics(prometheus.DefaultRegisterer)

	promoRegistry := promotions.NewRegistry(promotions.DefaultPromotions(), logg, time.Now())
	promoResolver, err := promotions.NewResolver(promoRegistry, redisClient, logg, nil)
	if err != nil {
		logg.Error(context.Background(), "failed to create promotion resolver", err)
		os.Exit(1)
	}

	var fetcher reviews.Fetcher
	if cfg.Reviews.UpstreamURL != "" {
		fetcher = reviews.NewHTTPFetcher(cfg.Reviews.UpstreamURL, cfg.Reviews.FetchTimeout)
	}
	reviewCache := reviews.NewCache(redisClient, fetcher, cfg.Reviews.CacheTTL, logg, quoteMetrics)

	quoteRepo, err := quotes.NewGormRepository(dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create quote repository", err)
		os.Exit(1)
	}

	quoteService, err := quotes.NewService(
		quoteRepo,
		locations.DefaultRegistry(),
		promoResolver,
		leads.DefaultRubric(cfg.Leads),
		reviewCache,
		redisClient,
		logg,
		quoteMetrics,
		nil,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create quote service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, quoteService, reviewCache),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
