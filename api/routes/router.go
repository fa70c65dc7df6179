package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greenvista/landscaping-backend/api/controllers"
	"github.com/greenvista/landscaping-backend/api/middleware"
	"github.com/greenvista/landscaping-backend/internal/quotes"
	"github.com/greenvista/landscaping-backend/pkg/config"
	"github.com/greenvista/landscaping-backend/pkg/logger"
	"github.com/greenvista/landscaping-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	quoteService *quotes.Service,
	reviewSource controllers.ReviewSource,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	quotePolicy := middleware.NewQuoteRateLimitPolicy(cfg.QuoteLimit)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisPinger(redisClient)))
	})

	r.Route("/api", func(r chi.Router) {
		submit := controllers.SubmitQuote(quoteService, logg)
		if redisClient != nil {
			r.With(middleware.QuoteRateLimit(quotePolicy, redisClient, logg)).Post("/quote", submit)
		} else {
			r.Post("/quote", submit)
		}
		r.Get("/quote", controllers.GetQuote(quoteService, logg))
		r.Get("/reviews", controllers.GetReviews(reviewSource))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// A nil *redis.Client must become a nil interface so the readiness probe
// skips it instead of calling through it.
func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
