package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records the quote pipeline's submission and cache behavior.
type QuoteMetrics struct {
	contextDuration  *prometheus.HistogramVec
	submissions      *prometheus.CounterVec
	promoRedemptions prometheus.Counter
	reviewCache      *prometheus.CounterVec
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_context_duration_seconds",
		Help:    "Time spent generating quote contexts.",
		Buckets: prometheus.DefBuckets,
	}, []string{"priority"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_submissions_total",
		Help: "Accepted quote submissions by lead priority.",
	}, []string{"priority"})
	redemptions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "promo_redemptions_total",
		Help: "Promo codes redeemed through quote submissions.",
	})
	reviewCache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "review_cache_results_total",
		Help: "Review cache lookups by outcome (hit, miss, fallback).",
	}, []string{"outcome"})
	reg.MustRegister(duration, submissions, redemptions, reviewCache)
	return &QuoteMetrics{
		contextDuration:  duration,
		submissions:      submissions,
		promoRedemptions: redemptions,
		reviewCache:      reviewCache,
	}
}

// ObserveContextDuration records how long context generation took.
func (q *QuoteMetrics) ObserveContextDuration(priority string, duration time.Duration) {
	if q == nil || q.contextDuration == nil {
		return
	}
	q.contextDuration.WithLabelValues(normalizeLabel(priority)).Observe(duration.Seconds())
}

// IncSubmission counts an accepted quote submission.
func (q *QuoteMetrics) IncSubmission(priority string) {
	if q == nil || q.submissions == nil {
		return
	}
	q.submissions.WithLabelValues(normalizeLabel(priority)).Inc()
}

// IncPromoRedemption counts a redeemed promo code.
func (q *QuoteMetrics) IncPromoRedemption() {
	if q == nil || q.promoRedemptions == nil {
		return
	}
	q.promoRedemptions.Inc()
}

// IncReviewCache counts a review cache lookup outcome.
func (q *QuoteMetrics) IncReviewCache(outcome string) {
	if q == nil || q.reviewCache == nil {
		return
	}
	q.reviewCache.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
